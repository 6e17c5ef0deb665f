package nodefaultclient_test

import (
	"testing"

	"github.com/Totarae/URLShortenerClient/cmd/staticlint/nodefaultclient"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), nodefaultclient.Analyzer, "a", "b")
}
