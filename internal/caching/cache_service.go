package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"dinepos/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RecipeCache stores resolved recipes keyed by tenant and product.
type RecipeCache interface {
	// GetRecipe reports a miss with found == false and a nil error.
	GetRecipe(ctx context.Context, tenantID, productID uuid.UUID) (recipe []models.RecipeEntry, found bool, err error)
	SetRecipe(ctx context.Context, tenantID, productID uuid.UUID, recipe []models.RecipeEntry) error
	DeleteRecipe(ctx context.Context, tenantID, productID uuid.UUID) error
	InvalidateTenant(ctx context.Context, tenantID uuid.UUID) error
	Ping(ctx context.Context) error
}

type redisRecipeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient accepts either host:port or a redis:// URL.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opts, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		if password != "" {
			opts.Password = password
		}
		return redis.NewClient(opts), nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), nil
}

func NewRedisRecipeCache(client *redis.Client, ttl time.Duration) RecipeCache {
	return &redisRecipeCache{client: client, ttl: ttl}
}

func recipeKey(tenantID, productID uuid.UUID) string {
	return fmt.Sprintf("dinepos:recipe:%s:%s", tenantID.String(), productID.String())
}

func (r *redisRecipeCache) GetRecipe(ctx context.Context, tenantID, productID uuid.UUID) ([]models.RecipeEntry, bool, error) {
	data, err := r.client.Get(ctx, recipeKey(tenantID, productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var recipe []models.RecipeEntry
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, false, err
	}
	return recipe, true, nil
}

func (r *redisRecipeCache) SetRecipe(ctx context.Context, tenantID, productID uuid.UUID, recipe []models.RecipeEntry) error {
	if recipe == nil {
		recipe = []models.RecipeEntry{}
	}
	data, err := json.Marshal(recipe)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, recipeKey(tenantID, productID), data, r.ttl).Err()
}

func (r *redisRecipeCache) DeleteRecipe(ctx context.Context, tenantID, productID uuid.UUID) error {
	return r.client.Del(ctx, recipeKey(tenantID, productID)).Err()
}

// InvalidateTenant drops every cached recipe of one tenant.
func (r *redisRecipeCache) InvalidateTenant(ctx context.Context, tenantID uuid.UUID) error {
	pattern := fmt.Sprintf("dinepos:recipe:%s:*", tenantID.String())
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisRecipeCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
