package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumGroups   int
	NumPosts    int
	ShouldClean bool
	SkipBcrypt  bool
	MaxDays     int
}

// Seed populates the database with test data: users, groups, posts,
// comments, and a sparse follow mesh.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users, %d groups, %d posts...",
		opts.NumUsers, opts.NumGroups, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db, opts)
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d test users created", len(users))

	groups := make([]*models.Group, 0, opts.NumGroups)
	for i := 0; i < opts.NumGroups; i++ {
		group, err := f.CreateGroup()
		if err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}
		groups = append(groups, group)
	}
	log.Printf("%d groups created", len(groups))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[r.Intn(len(users))]
		post, err := f.CreatePost(author, func(p *models.Post) {
			// Roughly two thirds of posts are filed under a group.
			if len(groups) > 0 && r.Float32() < 0.66 {
				p.GroupID = &groups[r.Intn(len(groups))].ID
			}
		})
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("%d posts created", len(posts))

	commentCount := 0
	for _, post := range posts {
		for i := 0; i < r.Intn(4); i++ {
			commenter := users[r.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			commentCount++
		}
	}
	log.Printf("%d comments created", commentCount)

	followCount := 0
	for _, follower := range users {
		for _, author := range users {
			if follower.ID == author.ID {
				continue
			}
			if r.Float32() < 0.1 {
				if _, err := f.CreateFollow(follower, author); err != nil {
					return fmt.Errorf("failed to create follow: %w", err)
				}
				followCount++
			}
		}
	}
	log.Printf("%d follow edges created", followCount)

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, follows, posts, groups, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
