package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ogc-tools/geojson-to-wfst/config"
)

func testServer() *Server {
	cfg := config.AppConfig{
		Layers: []config.LayerConfig{{
			Name:         "town",
			Ns:           "topp",
			GeometryName: "geom",
		}},
		Namespaces: map[string]string{"topp": "http://example.com/topp"},
	}
	cfg.ApplyDefaults()
	return New(cfg)
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := do(t, testServer(), http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}

func TestHandleConvertGML(t *testing.T) {
	geojson := `{"type":"Point","coordinates":[-72.5,42.3]}`

	rec := do(t, testServer(), http.MethodPost, "/api/convert/gml?gmlId=pt.1", geojson)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	want := `<gml:Point gml:id="pt.1"><gml:pos>42.3 -72.5</gml:pos></gml:Point>`
	if rec.Body.String() != want {
		t.Errorf("expected %s, got %s", want, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/xml" {
		t.Errorf("expected application/xml, got %s", ct)
	}
}

func TestHandleConvertGMLSimpleDialect(t *testing.T) {
	geojson := `{"type":"Point","coordinates":[-72.5,42.3]}`

	rec := do(t, testServer(), http.MethodPost, "/api/convert/gml?dialect=simple", geojson)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `<gml:coordinates cs="," ts=" " decimal=".">-72.5,42.3</gml:coordinates>`) {
		t.Errorf("expected simple-features coordinates, got %s", rec.Body.String())
	}
}

func TestHandleConvertGMLRejectsBadInput(t *testing.T) {
	s := testServer()
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{name: "malformed geometry", target: "/api/convert/gml", body: `{"type":"Pentagon"}`},
		{name: "unknown dialect", target: "/api/convert/gml?dialect=gml4", body: `{"type":"Point","coordinates":[0,0]}`},
		{name: "bad srsDimension", target: "/api/convert/gml?srsDimension=5", body: `{"type":"Point","coordinates":[0,0]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(t, s, http.MethodPost, tt.target, tt.body); rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleConvertGMLMethodNotAllowed(t *testing.T) {
	if rec := do(t, testServer(), http.MethodGet, "/api/convert/gml", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestHandleTransaction(t *testing.T) {
	body := `{
		"layer": "town",
		"insert": [{"type":"Feature","id":"3","geometry":{"type":"Point","coordinates":[-72.5,42.3]},"properties":{"name":"Amherst"}}],
		"delete": ["4"]
	}`

	rec := do(t, testServer(), http.MethodPost, "/api/transaction", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	out := rec.Body.String()
	checks := []string{
		`<wfs:Transaction service="WFS" version="2.0.0"`,
		"<wfs:Insert><topp:town>",
		`<topp:geom><gml:Point gml:id="town.3">`,
		"<topp:name>Amherst</topp:name>",
		`<wfs:Delete typeName="topp:townType">`,
		`<fes:ResourceId rid="town.4"/>`,
	}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Errorf("expected %s in %s", c, out)
		}
	}
}

func TestHandleTransactionDefaultLayer(t *testing.T) {
	rec := do(t, testServer(), http.MethodPost, "/api/transaction", `{"delete":["7"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `rid="town.7"`) {
		t.Errorf("expected first configured layer, got %s", rec.Body.String())
	}
}

func TestHandleTransactionRejectsBadRequests(t *testing.T) {
	s := testServer()
	tests := []struct {
		name string
		body string
	}{
		{name: "no action sets", body: `{"layer":"town"}`},
		{name: "unknown layer", body: `{"layer":"road","delete":["1"]}`},
		{name: "empty delete id", body: `{"layer":"town","delete":[""]}`},
		{name: "malformed feature", body: `{"layer":"town","insert":[{"type":"Pentagon"}]}`},
		{name: "not json", body: `{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(t, s, http.MethodPost, "/api/transaction", tt.body); rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}
