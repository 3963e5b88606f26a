package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevin07696/httpkit/pkg/transport"
)

func TestHeaders_PreservesOrderAndDuplicates(t *testing.T) {
	var h transport.Headers
	h.Add("Set-Cookie", "a=1")
	h.Add("Content-Type", "application/json")
	h.Add("Set-Cookie", "b=2")

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []transport.Param{
		{Name: "Set-Cookie", Value: "a=1"},
		{Name: "Content-Type", Value: "application/json"},
		{Name: "Set-Cookie", Value: "b=2"},
	}, h.Entries(), "insertion order must survive, duplicates included")

	assert.Equal(t, []string{"a=1", "b=2"}, h.Values("Set-Cookie"))
}

func TestHeaders_GetIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		name      string
		lookup    string
		wantValue string
		wantOK    bool
	}{
		{name: "exact match", lookup: "Content-Type", wantValue: "text/plain", wantOK: true},
		{name: "lowercase lookup", lookup: "content-type", wantValue: "text/plain", wantOK: true},
		{name: "uppercase lookup", lookup: "CONTENT-TYPE", wantValue: "text/plain", wantOK: true},
		{name: "absent header", lookup: "Authorization", wantValue: "", wantOK: false},
	}

	h := transport.NewHeaders(
		transport.Param{Name: "Content-Type", Value: "text/plain"},
		transport.Param{Name: "Content-Type", Value: "ignored-duplicate"},
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := h.Get(tt.lookup)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, got, "Get must return the first value")
		})
	}
}

func TestHeaders_CloneIsIndependent(t *testing.T) {
	original := transport.NewHeaders(transport.Param{Name: "a", Value: "1"})
	clone := original.Clone()
	clone.Add("b", "2")

	assert.Equal(t, 1, original.Len(), "mutating the clone must not affect the original")
	assert.Equal(t, 2, clone.Len())
}

func TestHeaders_RoundTripThroughRequestAndResponse(t *testing.T) {
	entries := []transport.Param{
		{Name: "x-first", Value: "1"},
		{Name: "x-second", Value: "2"},
		{Name: "x-first", Value: "3"},
	}

	req := transport.NewRequest("GET", transport.NewURI("https", "api.example.com"))
	for _, p := range entries {
		req.Headers.Add(p.Name, p.Value)
	}
	assert.Equal(t, entries, req.Headers.Entries())

	resp := &transport.Response{
		StatusCode: 200,
		Headers:    transport.NewHeaders(entries...),
	}
	assert.Equal(t, entries, resp.Headers.Entries())
}
