package fifa

import "time"

const (
	defaultBaseURL     = "https://worldcup.sfg.io"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)
