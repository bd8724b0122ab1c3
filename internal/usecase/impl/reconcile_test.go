package impl

import (
	"strings"
	"testing"

	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupedNames_PreservesFirstSeenOrder(t *testing.T) {
	refs := []usecase.NamedRef{
		{Name: "Vegan"},
		{Name: "Quick"},
		{Name: "Vegan"},
		{Name: "Spicy"},
	}

	names, err := dedupedNames("tag", refs)

	require.NoError(t, err)
	assert.Equal(t, []string{"Vegan", "Quick", "Spicy"}, names)
}

func TestDedupedNames_CaseSensitive(t *testing.T) {
	refs := []usecase.NamedRef{
		{Name: "Vegan"},
		{Name: "vegan"},
	}

	names, err := dedupedNames("tag", refs)

	require.NoError(t, err)
	assert.Len(t, names, 2)
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "Vegan", wantErr: false},
		{name: "at length limit", input: strings.Repeat("a", 255), wantErr: false},
		{name: "blank", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "over length limit", input: strings.Repeat("a", 256), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateName("tag", tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
