package captions

import (
	"errors"
	"testing"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch url extra params", "https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", false},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"live", "https://www.youtube.com/live/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"mobile", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"surrounding whitespace", "  dQw4w9WgXcQ \n", "dQw4w9WgXcQ", false},
		{"wrong host", "https://vimeo.com/12345678901", "", true},
		{"missing v param", "https://www.youtube.com/watch?list=PL123", "", true},
		{"id too short", "https://youtu.be/short", "", true},
		{"garbage", "not a url at all", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVideoID(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVideoID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidVideoURL) {
				t.Errorf("error = %v, want ErrInvalidVideoURL", err)
			}
			if got != tt.want {
				t.Errorf("ParseVideoID() = %q, want %q", got, tt.want)
			}
		})
	}
}
