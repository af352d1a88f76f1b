package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// videoItem is the stored shape of a video record. Absent attributes
// unmarshal to empty strings.
type videoItem struct {
	ID       string `dynamodbav:"id"`
	Subject  string `dynamodbav:"subject"`
	Topic    string `dynamodbav:"topic"`
	Subtopic string `dynamodbav:"subtopic"`
	Title    string `dynamodbav:"title"`
	URL      string `dynamodbav:"url"`
}

func toVideoItem(v domain.Video) videoItem {
	return videoItem(v)
}

func (i videoItem) toDomain() domain.Video {
	return domain.Video(i)
}

// VideoRepo stores video records in a table keyed by id.
type VideoRepo struct {
	api   API
	table string
}

// NewVideoRepo creates a video repository over table.
func NewVideoRepo(api API, table string) *VideoRepo {
	return &VideoRepo{api: api, table: table}
}

func (r *VideoRepo) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// Create writes v under v.ID.
func (r *VideoRepo) Create(ctx context.Context, v domain.Video) error {
	av, err := attributevalue.MarshalMap(toVideoItem(v))
	if err != nil {
		return fmt.Errorf("marshal video %s: %w", v.ID, err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	return mapError(err, "video", v.ID)
}

// Update replaces the item for v.ID. Returns domain.ErrNotFound when no
// item with that id exists.
func (r *VideoRepo) Update(ctx context.Context, v domain.Video) error {
	av, err := attributevalue.MarshalMap(toVideoItem(v))
	if err != nil {
		return fmt.Errorf("marshal video %s: %w", v.ID, err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	return mapError(err, "video", v.ID)
}

// GetByID returns the record for id or domain.ErrNotFound.
func (r *VideoRepo) GetByID(ctx context.Context, id string) (domain.Video, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(id),
	})
	if err != nil {
		return domain.Video{}, mapError(err, "video", id)
	}
	if out.Item == nil {
		return domain.Video{}, fmt.Errorf("video %s: %w", id, domain.ErrNotFound)
	}

	var item videoItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return domain.Video{}, fmt.Errorf("unmarshal video %s: %w", id, err)
	}
	return item.toDomain(), nil
}

// List scans the whole table, following every page.
func (r *VideoRepo) List(ctx context.Context) ([]domain.Video, error) {
	p := dynamodb.NewScanPaginator(r.api, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})

	videos := make([]domain.Video, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, mapError(err, "video", "*")
		}

		var items []videoItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal videos: %w", err)
		}
		for _, it := range items {
			videos = append(videos, it.toDomain())
		}
	}
	return videos, nil
}

// Delete removes the item for id. Deleting a missing id succeeds.
func (r *VideoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(id),
	})
	return mapError(err, "video", id)
}

// Ping checks the videos table.
func (r *VideoRepo) Ping(ctx context.Context) error {
	return Ping(ctx, r.api, r.table)
}
