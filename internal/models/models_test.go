package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDraft(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		tt := []struct {
			name    string
			draft   Draft
			wantErr bool
		}{
			{name: "valid", draft: Draft{Name: "Site", URL: "https://example.com"}},
			{name: "valid with preview", draft: Draft{Name: "Site", URL: "http://example.com", PreviewURL: "https://example.com/demo"}},
			{name: "missing name", draft: Draft{URL: "https://example.com"}, wantErr: true},
			{name: "blank name", draft: Draft{Name: "   ", URL: "https://example.com"}, wantErr: true},
			{name: "missing url", draft: Draft{Name: "Site"}, wantErr: true},
			{name: "relative url", draft: Draft{Name: "Site", URL: "/about"}, wantErr: true},
			{name: "unsupported scheme", draft: Draft{Name: "Site", URL: "ftp://example.com"}, wantErr: true},
			{name: "bad preview", draft: Draft{Name: "Site", URL: "https://example.com", PreviewURL: "demo"}, wantErr: true},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				err := tc.draft.Validate()
				if (err != nil) != tc.wantErr {
					t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
				}
			})
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		got := Draft{Name: "  Site ", URL: " https://example.com\n", Author: "\tAda "}.Normalize()
		want := Draft{Name: "Site", URL: "https://example.com", Author: "Ada"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("WithID", func(t *testing.T) {
		d := Draft{Name: "Site", URL: "https://example.com", Description: "desc", Author: "Ada", PreviewURL: "https://example.com/p"}
		got := d.WithID(7)
		want := Website{ID: 7, Name: "Site", URL: "https://example.com", Description: "desc", Author: "Ada", PreviewURL: "https://example.com/p"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("WithID() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestWebsiteHost(t *testing.T) {
	tt := []struct {
		url  string
		want string
	}{
		{url: "https://example.com/path", want: "example.com"},
		{url: "http://localhost:8080", want: "localhost:8080"},
		{url: "not a url", want: "not a url"},
	}

	for _, tc := range tt {
		t.Run(tc.url, func(t *testing.T) {
			if got := (Website{URL: tc.url}).Host(); got != tc.want {
				t.Errorf("Host() = %q, want %q", got, tc.want)
			}
		})
	}
}
