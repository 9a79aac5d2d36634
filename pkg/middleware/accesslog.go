package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// AccessLog logs one line per request with method, path, status and
// duration. Template responses are logged when they are rendered.
func AccessLog(logger zerolog.Logger) Decorator {
	return func(view View) View {
		return func(r *http.Request) (*Response, error) {
			start := time.Now()
			resp, err := view(r)

			switch {
			case err != nil:
				logger.Warn().
					Err(err).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Dur("duration", time.Since(start)).
					Msg("Request failed")
			case resp != nil && !resp.IsRendered():
				resp.AddPostRenderCallback(func(rendered *Response) *Response {
					logAccess(logger, r, rendered, start)
					return nil
				})
			default:
				logAccess(logger, r, resp, start)
			}
			return resp, err
		}
	}
}

func logAccess(logger zerolog.Logger, r *http.Request, resp *Response, start time.Time) {
	status := http.StatusNoContent
	size := 0
	if resp != nil {
		status = resp.StatusCode
		size = len(resp.Body)
	}
	logger.Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status_code", status).
		Int("bytes", size).
		Dur("duration", time.Since(start)).
		Msg("Request served")
}
