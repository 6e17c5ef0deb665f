package a

import (
	"net/http"
	"net/url"
)

func fetch(u string) {
	resp, _ := http.Get(u) // want "http.Get использует глобальный клиент; используйте настроенный клиент"
	if resp != nil {
		resp.Body.Close()
	}
	_, _ = http.Post(u, "application/json", nil) // want "http.Post использует глобальный клиент"
	_, _ = http.PostForm(u, url.Values{})       // want "http.PostForm использует глобальный клиент"
	_, _ = http.Head(u)                         // want "http.Head использует глобальный клиент"
	_ = http.DefaultClient                      // want "http.DefaultClient использует глобальный клиент"
}

func configured(u string) {
	c := &http.Client{}
	_, _ = c.Get(u)
	_, _ = c.Post(u, "text/plain", nil)
	_ = http.MethodGet
}
