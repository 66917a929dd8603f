package handler

type ArticleResponse struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"url_to_image"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	Category    string `json:"category"`
}

type ArticlesResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Dropped  int               `json:"dropped"`
}

type GroupedCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PayoutLineResponse struct {
	ID      int64   `json:"id"`
	Author  string  `json:"author"`
	Article string  `json:"article"`
	Views   int     `json:"views"`
	Rate    float64 `json:"rate"`
	Payout  float64 `json:"payout"`
}

type PayoutsResponse struct {
	Rows        []PayoutLineResponse `json:"rows"`
	TotalPayout float64              `json:"total_payout"`
}

type UpdateRateRequest struct {
	Rate float64 `json:"rate"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
