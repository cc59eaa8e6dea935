package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gurukul/internal/domain/course"
	"gurukul/internal/shared/logger"
)

const (
	courseKeyPrefix     = "catalog:course:"
	courseListKeyPrefix = "catalog:list:"
)

// cachedCourse is the Redis serialization of a course. Domain aggregates keep
// their fields unexported, so the cache carries its own flat shape.
type cachedCourse struct {
	ID            string         `json:"id"`
	Kind          string         `json:"kind"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Price         string         `json:"price"`
	OriginalPrice *string        `json:"originalPrice,omitempty"`
	ValidityDays  *int           `json:"validityDays,omitempty"`
	Content       []course.Level `json:"content,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// CachedCourseRepository is a read-through cache in front of the catalog
// repository. Cache failures degrade to the underlying store and are logged,
// never surfaced to callers.
type CachedCourseRepository struct {
	inner  course.Repository
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewCachedCourseRepository wraps a course repository with a Redis cache
func NewCachedCourseRepository(
	inner course.Repository,
	client *redis.Client,
	ttl time.Duration,
	log logger.Interface,
) course.Repository {
	return &CachedCourseRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

// GetByID retrieves a course, consulting the cache first
func (r *CachedCourseRepository) GetByID(ctx context.Context, kind course.Kind, id string) (*course.Course, error) {
	key := courseKey(kind, id)

	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var cached cachedCourse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached.toDomain()
		}
		r.logger.Warnw("dropping corrupt cache entry", "key", key)
		r.client.Del(ctx, key)
	} else if err != redis.Nil {
		r.logger.Warnw("cache read failed", "key", key, "error", err)
	}

	c, err := r.inner.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, fromDomain(c))
	return c, nil
}

// ListByKind retrieves all courses of a kind, consulting the cache first
func (r *CachedCourseRepository) ListByKind(ctx context.Context, kind course.Kind) ([]*course.Course, error) {
	key := courseListKeyPrefix + kind.String()

	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var cached []cachedCourse
		if err := json.Unmarshal(raw, &cached); err == nil {
			courses := make([]*course.Course, 0, len(cached))
			ok := true
			for i := range cached {
				c, err := cached[i].toDomain()
				if err != nil {
					ok = false
					break
				}
				courses = append(courses, c)
			}
			if ok {
				return courses, nil
			}
		}
		r.logger.Warnw("dropping corrupt cache entry", "key", key)
		r.client.Del(ctx, key)
	} else if err != redis.Nil {
		r.logger.Warnw("cache read failed", "key", key, "error", err)
	}

	courses, err := r.inner.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	cached := make([]cachedCourse, len(courses))
	for i, c := range courses {
		cached[i] = fromDomain(c)
	}
	r.store(ctx, key, cached)

	return courses, nil
}

func (r *CachedCourseRepository) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		r.logger.Warnw("failed to encode cache entry", "key", key, "error", err)
		return
	}
	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.logger.Warnw("cache write failed", "key", key, "error", err)
	}
}

func courseKey(kind course.Kind, id string) string {
	return fmt.Sprintf("%s%s:%s", courseKeyPrefix, kind.String(), id)
}

func fromDomain(c *course.Course) cachedCourse {
	return cachedCourse{
		ID:            c.ID(),
		Kind:          c.Kind().String(),
		Title:         c.Title(),
		Description:   c.Description(),
		Price:         c.Price(),
		OriginalPrice: c.OriginalPrice(),
		ValidityDays:  c.ValidityDays(),
		Content:       c.Content(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func (cc *cachedCourse) toDomain() (*course.Course, error) {
	return course.ReconstructCourse(
		cc.ID,
		course.Kind(cc.Kind),
		cc.Title,
		cc.Description,
		cc.Price,
		cc.OriginalPrice,
		cc.ValidityDays,
		cc.Content,
		cc.CreatedAt,
		cc.UpdatedAt,
	)
}
