// Package middleware turns request/response hook objects into per-view
// decorators.
//
// A View handles one request and returns a Response. A middleware value is
// any type implementing one or more of the hook interfaces
// (RequestProcessor, ViewProcessor, ErrorProcessor,
// TemplateResponseProcessor, ResponseProcessor). FromMiddleware wraps a view
// so the hooks run around it in a fixed order:
//
//  1. ProcessRequest; a non-nil response short-circuits
//  2. ProcessView; a non-nil response short-circuits
//  3. the view; errors and panics are offered to ProcessError
//  4. ProcessTemplateResponse plus a deferred ProcessResponse for template
//     responses, ProcessResponse directly otherwise
//
// # Basic Usage
//
//	type stamp struct{}
//
//	func (stamp) ProcessResponse(r *http.Request, resp *middleware.Response) *middleware.Response {
//		resp.Header.Set("X-Served-By", "webkit")
//		return resp
//	}
//
//	withStamp := middleware.FromMiddleware(func(middleware.View) any { return stamp{} })
//	view := middleware.Decorate(listItems, withStamp, middleware.Metrics())
//	http.Handle("/items", middleware.Handler(view))
//
// # Metrics
//
//   - webkit_http_responses_total{status} - Responses seen by the Metrics hook
//   - webkit_http_view_errors_total - View errors seen by the Metrics hook
package middleware
