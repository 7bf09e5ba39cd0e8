package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"depositflow/internal/domain/entity"
	"depositflow/internal/domain/repository"
	"depositflow/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

// userDocID builds the composite primary key for the users collection.
func userDocID(email string, role entity.Role) string {
	return fmt.Sprintf("%s#%s", email, role)
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection("users").Doc(userDocID(user.Email, user.Role)).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("User already exists")
		}
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByEmailAndRole(ctx context.Context, email string, role entity.Role) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(userDocID(email, role)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	iter := r.client.Collection("users").Where("email", "==", email).Documents(ctx)

	var users []*entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate users", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, errors.Internal("Failed to parse user data", err)
		}
		users = append(users, &user)
	}

	return users, nil
}

func (r *firestoreUserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	query := r.client.Collection("users").Query

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count users", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var users []*entity.User

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate users", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, 0, errors.Internal("Failed to parse user data", err)
		}
		users = append(users, &user)
	}

	return users, total, nil
}
