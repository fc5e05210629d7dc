package respondchat

type Input struct {
	Message string `json:"message"`
}

type Output struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}
