// File: database/repository/capacity/capacity.go
package capacityRepo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"studyplan/utils"

	"github.com/go-redis/redis/v8"
)

const daysPerWeek = 7

// CapacityRepository stores each user's study capacity per weekday,
// indexed 0=Monday .. 6=Sunday, in minutes.
type CapacityRepository interface {
	Get(ctx context.Context, userID string) ([daysPerWeek]int, error)
	SetDay(ctx context.Context, userID string, dayIndex, minutes int) error
}

type redisCapacityRepo struct {
	client       redis.Cmdable
	defaultTotal int
}

// NewRedisCapacityRepo returns a repository backed by one Redis hash per
// user. Days without a stored value report defaultTotal.
func NewRedisCapacityRepo(client redis.Cmdable, defaultTotal int) CapacityRepository {
	return &redisCapacityRepo{client: client, defaultTotal: defaultTotal}
}

func key(userID string) string {
	return utils.CapacityCachePrefix + userID
}

func (r *redisCapacityRepo) Get(ctx context.Context, userID string) ([daysPerWeek]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	fields, err := r.client.HGetAll(ctx, key(userID)).Result()
	if err != nil && err != redis.Nil {
		return [daysPerWeek]int{}, fmt.Errorf("failed to read capacity settings: %w", err)
	}
	return DecodeTotals(fields, r.defaultTotal), nil
}

func (r *redisCapacityRepo) SetDay(ctx context.Context, userID string, dayIndex, minutes int) error {
	if dayIndex < 0 || dayIndex >= daysPerWeek {
		return fmt.Errorf("day index %d out of range", dayIndex)
	}
	if minutes < 0 || minutes > utils.MaxDailyCapacity {
		return fmt.Errorf("capacity %d out of range", minutes)
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := r.client.HSet(ctx, key(userID), strconv.Itoa(dayIndex), minutes).Err(); err != nil {
		return fmt.Errorf("failed to store capacity setting: %w", err)
	}
	return nil
}

// DecodeTotals turns a stored hash into seven daily totals. Missing,
// malformed or out-of-range fields fall back to def.
func DecodeTotals(fields map[string]string, def int) [daysPerWeek]int {
	var totals [daysPerWeek]int
	for i := range totals {
		totals[i] = def
		raw, ok := fields[strconv.Itoa(i)]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > utils.MaxDailyCapacity {
			continue
		}
		totals[i] = n
	}
	return totals
}
