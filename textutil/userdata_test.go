package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserData(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    UserData
		wantErr error
	}{
		{
			name: "well formed line",
			line: "John Doe john.doe@example.com",
			want: UserData{FirstName: "John", LastName: "Doe", User: "john.doe", Host: "example.com"},
		},
		{
			name: "trailing newline stays in host",
			line: "Ada Lovelace ada@analytical.engine\n",
			want: UserData{FirstName: "Ada", LastName: "Lovelace", User: "ada", Host: "analytical.engine\n"},
		},
		{
			name: "empty name token is kept",
			line: "Cher  cher@example.com",
			want: UserData{FirstName: "Cher", LastName: "", User: "cher", Host: "example.com"},
		},
		{
			name: "empty local-part",
			line: "No Body @example.com",
			want: UserData{FirstName: "No", LastName: "Body", User: "", Host: "example.com"},
		},
		{
			name:    "too few tokens",
			line:    "John john.doe@example.com",
			wantErr: ErrMalformedUserData,
		},
		{
			name:    "too many tokens",
			line:    "John Ronald Tolkien jrr@example.com",
			wantErr: ErrMalformedUserData,
		},
		{
			name:    "double space makes four tokens",
			line:    "John  Doe john.doe@example.com",
			wantErr: ErrMalformedUserData,
		},
		{
			name:    "missing at sign",
			line:    "John Doe john.doe.example.com",
			wantErr: ErrMalformedUserData,
		},
		{
			name:    "two at signs",
			line:    "John Doe john@doe@example.com",
			wantErr: ErrMalformedUserData,
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: ErrMalformedUserData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUserData(tt.line)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, UserData{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserDataString(t *testing.T) {
	line := "John Doe john.doe@example.com"
	u, err := ParseUserData(line)
	require.NoError(t, err)

	assert.Equal(t, "john.doe@example.com", u.Email())
	assert.Equal(t, line, u.String())
}
