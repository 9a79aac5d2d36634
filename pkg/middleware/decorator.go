package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// View handles a request.
type View func(*http.Request) (*Response, error)

// Decorator wraps a View.
type Decorator func(View) View

// Decorate wraps view with decorators. The first decorator is the outermost,
// so Decorate(v, a, b) behaves like a(b(v)).
func Decorate(view View, decorators ...Decorator) View {
	for i := len(decorators) - 1; i >= 0; i-- {
		view = decorators[i](view)
	}
	return view
}

// RequestProcessor runs before the view. A non-nil response is returned
// without calling the view.
type RequestProcessor interface {
	ProcessRequest(r *http.Request) *Response
}

// ViewProcessor runs after ProcessRequest with the view about to be called.
// A non-nil response is returned without calling the view.
type ViewProcessor interface {
	ProcessView(r *http.Request, view View) *Response
}

// ErrorProcessor is offered the error returned by the view, or a *PanicError
// if the view panicked. A non-nil response is returned in place of the
// failure.
type ErrorProcessor interface {
	ProcessError(r *http.Request, err error) *Response
}

// TemplateResponseProcessor may replace a template response before it is
// rendered. Returning nil keeps the original response.
type TemplateResponseProcessor interface {
	ProcessTemplateResponse(r *http.Request, resp *Response) *Response
}

// ResponseProcessor may replace the final response. For template responses
// it runs after rendering. Returning nil keeps the original response.
type ResponseProcessor interface {
	ProcessResponse(r *http.Request, resp *Response) *Response
}

// PanicError carries a value recovered from a panicking view.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("view panicked: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// FromMiddleware builds a Decorator from a middleware factory. factory is
// called once per decorated view and may return a value implementing any of
// the hook interfaces.
func FromMiddleware(factory func(View) any) Decorator {
	return func(view View) View {
		return wrap(factory(view), view)
	}
}

// FromMiddlewareWithArgs is FromMiddleware for factories taking an argument.
// The argument is supplied when the decorator is created.
func FromMiddlewareWithArgs[A any](factory func(View, A) any) func(A) Decorator {
	return func(arg A) Decorator {
		return FromMiddleware(func(view View) any {
			return factory(view, arg)
		})
	}
}

func wrap(mw any, view View) View {
	return func(r *http.Request) (*Response, error) {
		if p, ok := mw.(RequestProcessor); ok {
			if resp := p.ProcessRequest(r); resp != nil {
				return resp, nil
			}
		}
		if p, ok := mw.(ViewProcessor); ok {
			if resp := p.ProcessView(r, view); resp != nil {
				return resp, nil
			}
		}

		resp, handled, err := callView(mw, view, r)
		if err != nil {
			return nil, err
		}
		if handled {
			// A response from the error hook skips the response hooks
			return resp, nil
		}
		if resp == nil {
			return nil, nil
		}

		if resp.IsTemplate() {
			if p, ok := mw.(TemplateResponseProcessor); ok {
				if replaced := p.ProcessTemplateResponse(r, resp); replaced != nil {
					resp = replaced
				}
			}
			if p, ok := mw.(ResponseProcessor); ok {
				resp.AddPostRenderCallback(func(rendered *Response) *Response {
					return p.ProcessResponse(r, rendered)
				})
			}
			return resp, nil
		}

		if p, ok := mw.(ResponseProcessor); ok {
			if replaced := p.ProcessResponse(r, resp); replaced != nil {
				resp = replaced
			}
		}
		return resp, nil
	}
}

// callView runs view and offers failures to the error hook. handled is true
// when the error hook replaced a failure with a response. An unhandled panic
// is re-raised with its original value.
func callView(mw any, view View, r *http.Request) (resp *Response, handled bool, err error) {
	ep, ok := mw.(ErrorProcessor)
	if !ok {
		resp, err = view(r)
		return resp, false, err
	}

	resp, panicked, err := recoverView(view, r)
	if err == nil {
		return resp, false, nil
	}
	if replaced := ep.ProcessError(r, err); replaced != nil {
		return replaced, true, nil
	}
	if panicked != nil {
		panic(panicked.Value)
	}
	return nil, false, err
}

func recoverView(view View, r *http.Request) (resp *Response, panicked *PanicError, err error) {
	defer func() {
		if v := recover(); v != nil {
			panicked = &PanicError{Value: v, Stack: debug.Stack()}
			resp, err = nil, panicked
		}
	}()
	resp, err = view(r)
	return resp, nil, err
}
