package valueobject

import (
	"github.com/google/uuid"

	"github.com/jhoicas/catalog-api/internal/domain"
)

// Identity clave única de una entidad: un UUIDv7 (ordenable por tiempo) en forma canónica.
// Es inmutable; el valor cero no es una identidad válida.
type Identity struct {
	kind  Kind
	token string
}

// NewIdentity genera una identidad nueva.
func NewIdentity() Identity {
	return NewIdentityOf(KindIdentity)
}

// NewIdentityOf genera una identidad nueva de la variante indicada.
func NewIdentityOf(kind Kind) Identity {
	return Identity{kind: kind, token: uuid.Must(uuid.NewV7()).String()}
}

// ParseIdentity valida el token y construye la identidad.
func ParseIdentity(token string) (Identity, error) {
	return ParseIdentityOf(KindIdentity, token)
}

// ParseIdentityOf valida el token y construye la identidad de la variante indicada.
// Solo acepta la forma canónica de 36 caracteres; falla con *domain.InvalidIdentityError.
func ParseIdentityOf(kind Kind, token string) (Identity, error) {
	if len(token) != 36 {
		return Identity{}, &domain.InvalidIdentityError{Token: token}
	}
	u, err := uuid.Parse(token)
	if err != nil {
		return Identity{}, &domain.InvalidIdentityError{Token: token}
	}
	return Identity{kind: kind, token: u.String()}, nil
}

// Kind implementa ValueObject.
func (i Identity) Kind() Kind { return i.kind }

// Token valor serializable de la identidad.
func (i Identity) Token() string { return i.token }

func (i Identity) String() string { return i.token }

// IsZero indica si la identidad no fue inicializada.
func (i Identity) IsZero() bool { return i.token == "" }

// Equals igualdad estructural (variante + token).
func (i Identity) Equals(other ValueObject) bool {
	return Equal(i, other)
}

// MarshalText serializa la identidad como su token.
func (i Identity) MarshalText() ([]byte, error) {
	return []byte(i.token), nil
}
