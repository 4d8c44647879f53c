package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskcase/task-api/internal/core/domain"
	"github.com/taskcase/task-api/internal/core/ports"
)

const collectionTasks = "tasks"

// TaskRepository implements ports.TaskRepository on the tasks collection.
// Each operation is a single atomic document command, so no cross-request
// locking is needed above the driver.
type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection(collectionTasks)}
}

type mongoTask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	OwnerID     string             `bson:"owner_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (t mongoTask) toDomain() *domain.Task {
	return &domain.Task{
		ID:          t.ID.Hex(),
		Title:       t.Title,
		Description: t.Description,
		OwnerID:     t.OwnerID,
	}
}

func (r *TaskRepository) Insert(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTask{
		Title:       task.Title,
		Description: task.Description,
		OwnerID:     task.OwnerID,
		CreatedAt:   time.Now().UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	doc.ID = id
	return doc.toDomain(), nil
}

func (r *TaskRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	defer cur.Close(ctx)

	tasks := make([]*domain.Task, 0)
	for cur.Next(ctx) {
		var doc mongoTask
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidTaskID
	}

	var doc mongoTask
	if err := r.col.FindOne(ctx, bson.M{"_id": oid, "owner_id": ownerID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateByIDAndOwner atomically replaces title and description on the task
// matching both id and owner. A foreign-owned id matches nothing and is
// reported as ErrTaskNotFound.
func (r *TaskRepository) UpdateByIDAndOwner(ctx context.Context, id, ownerID, title, description string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidTaskID
	}

	filter := bson.M{"_id": oid, "owner_id": ownerID}
	update := bson.M{"$set": bson.M{"title": title, "description": description}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoTask
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TaskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidTaskID
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// EnsureIndexes creates the owner_id index that backs ListOwned.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}

var _ ports.TaskRepository = (*TaskRepository)(nil)
