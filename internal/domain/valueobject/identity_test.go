package valueobject_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/valueobject"
)

func TestNewIdentity_GeneraUUIDv7Valido(t *testing.T) {
	id := valueobject.NewIdentity()

	u, err := uuid.Parse(id.Token())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
	assert.Equal(t, valueobject.KindIdentity, id.Kind())
	assert.False(t, id.IsZero())
}

func TestNewIdentity_OrdenLexicograficoPorTiempo(t *testing.T) {
	prev := valueobject.NewIdentity().Token()
	for i := 0; i < 50; i++ {
		next := valueobject.NewIdentity().Token()
		assert.Less(t, prev, next)
		prev = next
	}
}

func TestParseIdentity_RoundTrip(t *testing.T) {
	original := valueobject.NewIdentity()

	parsed, err := valueobject.ParseIdentity(original.Token())
	require.NoError(t, err)
	assert.True(t, original.Equals(parsed))
	assert.Equal(t, original, parsed)
}

func TestParseIdentity_NormalizaMayusculas(t *testing.T) {
	original := valueobject.NewIdentity()

	parsed, err := valueobject.ParseIdentity(strings.ToUpper(original.Token()))
	require.NoError(t, err)
	assert.True(t, original.Equals(parsed))
}

func TestParseIdentity_TokenInvalido(t *testing.T) {
	cases := []string{
		"",
		"fake id",
		"123",
		"{9366b7dc-2d71-4799-b91c-c64adb205104}",
		"9366b7dc2d714799b91cc64adb205104",
		"9366b7dc-2d71-4799-b91c-c64adb20510z",
	}
	for _, token := range cases {
		t.Run(token, func(t *testing.T) {
			id, err := valueobject.ParseIdentity(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidIdentity))
			assert.Equal(t, "ID must be a valid UUID", err.Error())

			var invalid *domain.InvalidIdentityError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, token, invalid.Token)
			assert.True(t, id.IsZero(), "no debe construir una identidad parcial")
		})
	}
}

func TestIdentity_VariantesDistintasNoSonIguales(t *testing.T) {
	token := valueobject.NewIdentity().Token()
	a, err := valueobject.ParseIdentityOf("category_id", token)
	require.NoError(t, err)
	b, err := valueobject.ParseIdentity(token)
	require.NoError(t, err)

	assert.False(t, a.Equals(b))
	assert.False(t, b.Equals(a))
}

func TestIdentity_EqualsNil(t *testing.T) {
	id := valueobject.NewIdentity()
	assert.False(t, id.Equals(nil))
}

func TestIdentity_MarshalJSON(t *testing.T) {
	id := valueobject.NewIdentity()
	b, err := json.Marshal(struct {
		ID valueobject.Identity `json:"id"`
	}{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+id.Token()+`"}`, string(b))
}
