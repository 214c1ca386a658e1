package resetcode

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrInvalidCode = errors.New("código inválido ou expirado")

// Store guarda os códigos de redefinição de senha no redis, um por
// conta. Emitir um código novo sobrescreve o anterior e o TTL da
// chave expira o código sozinho.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func key(userID uint) string {
	return fmt.Sprintf("petshop:reset:%d", userID)
}

// Issue gera um código numérico de 6 dígitos para a conta.
func (s *Store) Issue(ctx context.Context, userID uint) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := s.rdb.Set(ctx, key(userID), code, s.ttl).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Verify confere o código sem consumi-lo.
func (s *Store) Verify(ctx context.Context, userID uint, code string) error {
	stored, err := s.rdb.Get(ctx, key(userID)).Result()
	if err == redis.Nil {
		return ErrInvalidCode
	}
	if err != nil {
		return err
	}
	if stored != code {
		return ErrInvalidCode
	}
	return nil
}

// Consume confere e invalida o código em seguida.
func (s *Store) Consume(ctx context.Context, userID uint, code string) error {
	if err := s.Verify(ctx, userID, code); err != nil {
		return err
	}
	return s.rdb.Del(ctx, key(userID)).Err()
}
