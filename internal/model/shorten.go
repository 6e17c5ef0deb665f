package model

// ShortenRequest представляет тело запроса на сокращение URL.
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse представляет ответ сервиса сокращения.
//
// Сервис исторически отдавал короткую ссылку под двумя именами поля,
// поэтому читаются оба.
type ShortenResponse struct {
	ShortURL       string `json:"short_url"`
	LegacyShortURL string `json:"shortUrl"`
	OriginalURL    string `json:"original_url,omitempty"`
	ShortCode      string `json:"short_code,omitempty"`
	SlugType       string `json:"slug_type,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Link возвращает короткую ссылку из любого из известных полей.
func (r ShortenResponse) Link() string {
	if r.ShortURL != "" {
		return r.ShortURL
	}
	return r.LegacyShortURL
}
