package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacar/lavadero-api/internal/application/dto"
	"github.com/spacar/lavadero-api/internal/domain"
	"github.com/spacar/lavadero-api/internal/domain/entity"
)

// ── Fake en memoria ──────────────────────────────────────────────────────────

type usuarioRepoFake struct {
	usuarios map[string]*entity.Usuario
}

func nuevoUsuarioRepoFake() *usuarioRepoFake {
	return &usuarioRepoFake{usuarios: make(map[string]*entity.Usuario)}
}

func (r *usuarioRepoFake) Create(u *entity.Usuario) error {
	if _, ok := r.usuarios[u.Usuario]; ok {
		return domain.ErrDuplicate
	}
	r.usuarios[u.Usuario] = u
	return nil
}

func (r *usuarioRepoFake) GetByUsuario(usuario string) (*entity.Usuario, error) {
	return r.usuarios[usuario], nil
}

func (r *usuarioRepoFake) GetAll() ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, u)
	}
	return out, nil
}

func (r *usuarioRepoFake) Update(u *entity.Usuario) error {
	if _, ok := r.usuarios[u.Usuario]; !ok {
		return domain.ErrUsuarioNotFound
	}
	r.usuarios[u.Usuario] = u
	return nil
}

func (r *usuarioRepoFake) Delete(usuario string) error {
	if _, ok := r.usuarios[usuario]; !ok {
		return domain.ErrUsuarioNotFound
	}
	delete(r.usuarios, usuario)
	return nil
}

func authDePrueba() (*UseCase, *usuarioRepoFake) {
	repo := nuevoUsuarioRepoFake()
	return NewUseCase(repo, "test-secret", "lavadero-api-test", 60), repo
}

func registroDePrueba() dto.RegistrarUsuarioRequest {
	return dto.RegistrarUsuarioRequest{
		Usuario:  "cajero1",
		Nombre:   "maria",
		Apellido: "lopez",
		Clave:    "clave123",
		Rol:      "operario",
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Caso: el registro normaliza los campos y nunca expone la clave.
func TestAuth_RegistrarNormaliza(t *testing.T) {
	uc, repo := authDePrueba()

	usuario, err := uc.Registrar(registroDePrueba())
	require.NoError(t, err)

	assert.Equal(t, "CAJERO1", usuario.Usuario)
	assert.Equal(t, "Maria", usuario.Nombre)
	assert.Equal(t, "Lopez", usuario.Apellido)
	assert.Equal(t, entity.RolOperario, usuario.Rol)

	guardado := repo.usuarios["CAJERO1"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "clave123", guardado.ClaveHash, "la clave debe almacenarse hasheada")
	assert.True(t, strings.HasPrefix(guardado.ClaveHash, "$2"), "hash bcrypt")
}

// Caso: usuario repetido → ErrDuplicate.
func TestAuth_RegistrarDuplicado(t *testing.T) {
	uc, _ := authDePrueba()

	_, err := uc.Registrar(registroDePrueba())
	require.NoError(t, err)

	_, err = uc.Registrar(registroDePrueba())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Caso: rol fuera del catálogo y clave corta son inválidos.
func TestAuth_RegistrarEntradaInvalida(t *testing.T) {
	uc, _ := authDePrueba()

	in := registroDePrueba()
	in.Rol = "GERENTE"
	_, err := uc.Registrar(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = registroDePrueba()
	in.Clave = "ab"
	_, err = uc.Registrar(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso: login correcto devuelve token y datos del usuario.
func TestAuth_LoginCorrecto(t *testing.T) {
	uc, _ := authDePrueba()
	_, err := uc.Registrar(registroDePrueba())
	require.NoError(t, err)

	sesion, err := uc.Login(dto.LoginRequest{Usuario: "cajero1", Clave: "clave123"})
	require.NoError(t, err)
	assert.NotEmpty(t, sesion.Token)
	assert.Equal(t, "CAJERO1", sesion.Usuario.Usuario)
}

// Caso: clave incorrecta y usuario inexistente responden el mismo error.
func TestAuth_LoginRechazado(t *testing.T) {
	uc, _ := authDePrueba()
	_, err := uc.Registrar(registroDePrueba())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Usuario: "cajero1", Clave: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Usuario: "fantasma", Clave: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso: actualizar con clave vacía conserva el hash actual.
func TestAuth_ActualizarConservaClave(t *testing.T) {
	uc, repo := authDePrueba()
	_, err := uc.Registrar(registroDePrueba())
	require.NoError(t, err)
	hashOriginal := repo.usuarios["CAJERO1"].ClaveHash

	_, err = uc.Actualizar("cajero1", dto.ActualizarUsuarioRequest{
		Nombre:   "Maria Fernanda",
		Apellido: "Lopez",
		Rol:      entity.RolAdmin,
	})
	require.NoError(t, err)

	actual := repo.usuarios["CAJERO1"]
	assert.Equal(t, hashOriginal, actual.ClaveHash)
	assert.Equal(t, entity.RolAdmin, actual.Rol)

	// El login sigue funcionando con la clave original.
	_, err = uc.Login(dto.LoginRequest{Usuario: "CAJERO1", Clave: "clave123"})
	assert.NoError(t, err)
}

// Caso: actualizar con clave nueva la reemplaza.
func TestAuth_ActualizarCambiaClave(t *testing.T) {
	uc, _ := authDePrueba()
	_, err := uc.Registrar(registroDePrueba())
	require.NoError(t, err)

	_, err = uc.Actualizar("cajero1", dto.ActualizarUsuarioRequest{
		Nombre:   "Maria",
		Apellido: "Lopez",
		Clave:    "nueva-clave",
		Rol:      entity.RolOperario,
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Usuario: "cajero1", Clave: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Usuario: "cajero1", Clave: "nueva-clave"})
	assert.NoError(t, err)
}

// Caso: Buscar y Eliminar sobre cuentas inexistentes.
func TestAuth_BuscarEliminarInexistente(t *testing.T) {
	uc, _ := authDePrueba()

	_, err := uc.Buscar("fantasma")
	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)

	err = uc.Eliminar("fantasma")
	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)
}
