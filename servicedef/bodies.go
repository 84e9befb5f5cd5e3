package servicedef

// Support is the informational block attached to the read endpoints.
type Support struct {
	URL  string `json:"url" yaml:"url"`
	Text string `json:"text" yaml:"text"`
}

type User struct {
	ID        int    `json:"id" yaml:"id"`
	Email     string `json:"email" yaml:"email"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Avatar    string `json:"avatar" yaml:"avatar"`
}

type Resource struct {
	ID           int    `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Year         int    `json:"year" yaml:"year"`
	Color        string `json:"color" yaml:"color"`
	PantoneValue string `json:"pantone_value" yaml:"pantone_value"`
}

// Page is the body of the list endpoints.
type Page[T any] struct {
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Data       []T     `json:"data"`
	Support    Support `json:"support"`
}

// Single is the body of the get-by-id endpoints.
type Single[T any] struct {
	Data    T       `json:"data"`
	Support Support `json:"support"`
}

type RegisterResult struct {
	ID    int    `json:"id"`
	Token string `json:"token"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type ErrorBody struct {
	Error string `json:"error"`
}
