// Package main запускает multichecker проекта.
//
// Он включает:
// - стандартные анализаторы go/analysis/passes
// - все SA-анализаторы staticcheck, а также S1000 и U1000
// - bodyclose: тело каждого ответа должно закрываться
// - noexit: запрещает os.Exit в функции main
// - nodefaultclient: HTTP-запросы только через настроенный клиент
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/unused"

	"github.com/Totarae/URLShortenerClient/cmd/staticlint/nodefaultclient"
	"github.com/Totarae/URLShortenerClient/cmd/staticlint/noexit"
)

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		unusedresult.Analyzer,
	}

	for _, a := range staticcheck.Analyzers {
		if a.Analyzer.Name[:2] == "SA" {
			list = append(list, a.Analyzer)
		}
	}
	// S1000 живёт в simple, U1000 в unused, а не в staticcheck.
	if a := findAnalyzer("S1000"); a != nil {
		list = append(list, a)
	}

	return append(list,
		unused.Analyzer.Analyzer,
		bodyclose.Analyzer,
		noexit.Analyzer,
		nodefaultclient.Analyzer,
	)
}

func findAnalyzer(name string) *analysis.Analyzer {
	for _, a := range simple.Analyzers {
		if a.Analyzer.Name == name {
			return a.Analyzer
		}
	}
	return nil
}
