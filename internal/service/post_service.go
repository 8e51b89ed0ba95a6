package service

import (
	"context"
	"fmt"

	"github.com/msomdec/practice-demos/internal/domain"
)

// PostService serves the local copy of the JSON test API's posts.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// List returns all posts ordered by ID.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// GetByID returns a post by its ID.
func (s *PostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: post id must be positive", domain.ErrInvalidInput)
	}
	return s.posts.GetByID(ctx, id)
}

// Count returns the number of stored posts.
func (s *PostService) Count(ctx context.Context) (int, error) {
	return s.posts.Count(ctx)
}

// SeedSamples stores the sample corpus. It is idempotent: existing posts
// with the same ID are overwritten with the sample content.
func (s *PostService) SeedSamples(ctx context.Context) error {
	for _, p := range samplePosts {
		if err := s.posts.Upsert(ctx, &p); err != nil {
			return fmt.Errorf("seed post %d: %w", p.ID, err)
		}
	}
	return nil
}

// SamplePostCount is the number of posts SeedSamples stores.
func SamplePostCount() int {
	return len(samplePosts)
}

var samplePosts = []domain.Post{
	{UserID: 1, ID: 1,
		Title: "sunt aut facere repellat provident occaecati excepturi optio reprehenderit",
		Body:  "quia et suscipit\nsuscipit recusandae consequuntur expedita et cum\nreprehenderit molestiae ut ut quas totam\nnostrum rerum est autem sunt rem eveniet architecto"},
	{UserID: 1, ID: 2,
		Title: "qui est esse",
		Body:  "est rerum tempore vitae\nsequi sint nihil reprehenderit dolor beatae ea dolores neque\nfugiat blanditiis voluptate porro vel nihil molestiae ut reiciendis\nqui aperiam non debitis possimus qui neque nisi nulla"},
	{UserID: 1, ID: 3,
		Title: "ea molestias quasi exercitationem repellat qui ipsa sit aut",
		Body:  "et iusto sed quo iure\nvoluptatem occaecati omnis eligendi aut ad\nvoluptatem doloribus vel accusantium quis pariatur\nmolestiae porro eius odio et labore et velit aut"},
	{UserID: 1, ID: 4,
		Title: "eum et est occaecati",
		Body:  "ullam et saepe reiciendis voluptatem adipisci\nsit amet autem assumenda provident rerum culpa\nquis hic commodi nesciunt rem tenetur doloremque ipsam iure\nquis sunt voluptatem rerum illo velit"},
	{UserID: 1, ID: 5,
		Title: "nesciunt quas odio",
		Body:  "repudiandae veniam quaerat sunt sed\nalias aut fugiat sit autem sed est\nvoluptatem omnis possimus esse voluptatibus quis\nest aut tenetur dolor neque"},
	{UserID: 2, ID: 6,
		Title: "dolorem eum magni eos aperiam quia",
		Body:  "ut aspernatur corporis harum nihil quis provident sequi\nmollitia nobis aliquid molestiae\nperspiciatis et ea nemo ab reprehenderit accusantium quas\nvoluptate dolores velit et doloremque molestiae"},
	{UserID: 2, ID: 7,
		Title: "magnam facilis autem",
		Body:  "dolore placeat quibusdam ea quo vitae\nmagni quis enim qui quis quo nemo aut saepe\nquidem repellat excepturi ut quia\nsunt ut sequi eos ea sed quas"},
	{UserID: 2, ID: 8,
		Title: "dolorem dolore est ipsam",
		Body:  "dignissimos aperiam dolorem qui eum\nfacilis quibusdam animi sint suscipit qui sint possimus cum\nquaerat magni maiores excepturi\nipsam ut commodi dolor voluptatum modi aut vitae"},
	{UserID: 2, ID: 9,
		Title: "nesciunt iure omnis dolorem tempora et accusantium",
		Body:  "consectetur animi nesciunt iure dolore\nenim quia ad\nveniam autem ut quam aut nobis\net est aut quod aut provident voluptas autem voluptas"},
	{UserID: 2, ID: 10,
		Title: "optio molestias id quia eum",
		Body:  "quo et expedita modi cum officia vel magni\ndoloribus qui repudiandae\nvero nisi sit\nquos veniam quod sed accusamus veritatis error"},
}
