package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RenderFunc produces the body of a template response.
type RenderFunc func() ([]byte, error)

// PostRenderCallback runs after a template response is rendered. A non-nil
// return value replaces the response handed to later callbacks.
type PostRenderCallback func(*Response) *Response

// Response is the result of a View.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	render    RenderFunc
	rendered  bool
	callbacks []PostRenderCallback
}

// NewResponse creates a plain response with the given status and body.
func NewResponse(status int, body []byte) *Response {
	return &Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       body,
		rendered:   true,
	}
}

// NewTemplateResponse creates a response whose body is produced lazily by
// render.
func NewTemplateResponse(status int, render RenderFunc) *Response {
	return &Response{
		StatusCode: status,
		Header:     make(http.Header),
		render:     render,
	}
}

// JSON creates a plain response with v encoded as the body.
func JSON(status int, v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	resp := NewResponse(status, body)
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

// IsTemplate reports whether the response renders lazily.
func (r *Response) IsTemplate() bool {
	return r.render != nil
}

// IsRendered reports whether Body holds the final content.
func (r *Response) IsRendered() bool {
	return r.rendered
}

// AddPostRenderCallback registers cb to run once the response is rendered.
// If rendering already happened, cb runs immediately.
func (r *Response) AddPostRenderCallback(cb PostRenderCallback) {
	if r.rendered {
		cb(r)
		return
	}
	r.callbacks = append(r.callbacks, cb)
}

// Render produces the body and runs the post-render callbacks in
// registration order. It returns the response produced by the last callback
// that returned one, or r itself. Rendering an already rendered response is
// a no-op.
func (r *Response) Render() (*Response, error) {
	if r.rendered {
		return r, nil
	}

	body, err := r.render()
	if err != nil {
		return nil, fmt.Errorf("render response: %w", err)
	}
	r.Body = body
	r.rendered = true

	out := r
	callbacks := r.callbacks
	r.callbacks = nil
	for _, cb := range callbacks {
		if next := cb(out); next != nil {
			out = next
		}
	}
	return out, nil
}
