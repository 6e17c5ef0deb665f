package noexit_test

import (
	"testing"

	"github.com/Totarae/URLShortenerClient/cmd/staticlint/noexit"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), noexit.Analyzer, "mainpkg", "lib")
}
