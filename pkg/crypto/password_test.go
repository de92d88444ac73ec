package crypto

import (
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password123!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, CheckPassword("Password123!", hash))
	assert.False(t, CheckPassword("WrongPass", hash))
}

func TestHashPassword_IndependentSalts(t *testing.T) {
	a, err := HashPassword("same-value")
	require.NoError(t, err)
	b, err := HashPassword("same-value")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a[:29], b[:29], "bcrypt salt prefix must differ")
}

func TestGenerateRandomToken(t *testing.T) {
	token, err := GenerateRandomToken(16)
	assert.NoError(t, err)
	assert.Len(t, token, 32)
}

func TestGenerateOTP_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, otp, 100000)
		assert.LessOrEqual(t, otp, 999999)
	}
}

func TestGenerateOTP_Bounds(t *testing.T) {
	orig := randomInt
	t.Cleanup(func() { randomInt = orig })

	randomInt = func(io.Reader, *big.Int) (*big.Int, error) { return big.NewInt(0), nil }
	otp, err := GenerateOTP()
	require.NoError(t, err)
	assert.Equal(t, 100000, otp)

	randomInt = func(_ io.Reader, max *big.Int) (*big.Int, error) {
		return new(big.Int).Sub(max, big.NewInt(1)), nil
	}
	otp, err = GenerateOTP()
	require.NoError(t, err)
	assert.Equal(t, 999999, otp)
}

func TestErrorBranches(t *testing.T) {
	origBcrypt := bcryptGenerateFromPassword
	origRandRead := randomRead
	origRandInt := randomInt
	t.Cleanup(func() {
		bcryptGenerateFromPassword = origBcrypt
		randomRead = origRandRead
		randomInt = origRandInt
	})

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("bcrypt failed")
	}
	_, err := HashPassword("Password123!")
	assert.Error(t, err)

	randomRead = func([]byte) (int, error) {
		return 0, errors.New("rand failed")
	}
	_, err = GenerateRandomToken(16)
	assert.Error(t, err)

	randomInt = func(io.Reader, *big.Int) (*big.Int, error) {
		return nil, errors.New("rand failed")
	}
	_, err = GenerateOTP()
	assert.Error(t, err)
}
