package middleware

import (
	"errors"
	"net/http"
	"testing"
)

func TestResponse_Plain(t *testing.T) {
	resp := NewResponse(http.StatusCreated, []byte("hi"))

	if resp.IsTemplate() {
		t.Error("Plain response should not be a template")
	}
	if !resp.IsRendered() {
		t.Error("Plain response should be rendered")
	}

	called := false
	resp.AddPostRenderCallback(func(*Response) *Response {
		called = true
		return nil
	})
	if !called {
		t.Error("Callback on a rendered response should run immediately")
	}

	out, err := resp.Render()
	if err != nil || out != resp {
		t.Errorf("Render on rendered response = %v, %v", out, err)
	}
}

func TestResponse_TemplateCallbacks(t *testing.T) {
	renders := 0
	resp := NewTemplateResponse(http.StatusOK, func() ([]byte, error) {
		renders++
		return []byte("body"), nil
	})

	var order []int
	replacement := NewResponse(http.StatusAccepted, []byte("replacement"))
	var seenByThird *Response

	resp.AddPostRenderCallback(func(*Response) *Response {
		order = append(order, 1)
		return nil
	})
	resp.AddPostRenderCallback(func(*Response) *Response {
		order = append(order, 2)
		return replacement
	})
	resp.AddPostRenderCallback(func(r *Response) *Response {
		order = append(order, 3)
		seenByThird = r
		return nil
	})

	out, err := resp.Render()
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if out != replacement {
		t.Error("Expected the replacement response to be returned")
	}
	if seenByThird != replacement {
		t.Error("Expected later callbacks to see the replacement")
	}
	if len(order) != 3 || order[0] != 1 || order[2] != 3 {
		t.Errorf("Expected callbacks in order, got %v", order)
	}
	if string(resp.Body) != "body" {
		t.Errorf("Expected body, got %q", resp.Body)
	}

	if _, err := resp.Render(); err != nil {
		t.Fatalf("Second render error: %v", err)
	}
	if renders != 1 {
		t.Errorf("Expected a single render, got %d", renders)
	}
}

func TestResponse_RenderError(t *testing.T) {
	errTemplate := errors.New("template missing")
	resp := NewTemplateResponse(http.StatusOK, func() ([]byte, error) {
		return nil, errTemplate
	})

	if _, err := resp.Render(); !errors.Is(err, errTemplate) {
		t.Errorf("Expected template error, got %v", err)
	}
	if resp.IsRendered() {
		t.Error("Failed render should leave the response unrendered")
	}
}

func TestJSON(t *testing.T) {
	resp, err := JSON(http.StatusOK, map[string]int{"page": 2})
	if err != nil {
		t.Fatalf("JSON error: %v", err)
	}
	if string(resp.Body) != `{"page":2}` {
		t.Errorf("Expected encoded body, got %s", resp.Body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}

	if _, err := JSON(http.StatusOK, make(chan int)); err == nil {
		t.Error("Expected error encoding a channel")
	}
}
