package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

type downloadItem struct {
	ID        string `dynamodbav:"id"`
	UID       string `dynamodbav:"uid"`
	LectureID string `dynamodbav:"lectureId"`
	Title     string `dynamodbav:"title"`
	Src       string `dynamodbav:"src"`
	CreatedAt string `dynamodbav:"createdAt"`
}

// createdAtLayout keeps a fixed fraction width so the index range key sorts
// lexically in time order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// DownloadRepo stores download events keyed by a generated id, with a
// global secondary index (uid, createdAt) for per-user reads.
type DownloadRepo struct {
	api      API
	table    string
	uidIndex string
	newID    func() string
}

// NewDownloadRepo creates a download repository.
func NewDownloadRepo(api API, table, uidIndex string) *DownloadRepo {
	return &DownloadRepo{api: api, table: table, uidIndex: uidIndex, newID: uuid.NewString}
}

// Append writes ev under a fresh id and returns it.
func (r *DownloadRepo) Append(ctx context.Context, ev domain.DownloadEvent) (string, error) {
	item := downloadItem{
		ID:        r.newID(),
		UID:       ev.UID,
		LectureID: ev.LectureID,
		Title:     ev.Title,
		Src:       ev.Src,
		CreatedAt: ev.CreatedAt.UTC().Format(createdAtLayout),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return "", fmt.Errorf("marshal download: %w", err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	if err != nil {
		return "", mapError(err, "download", ev.UID)
	}
	return item.ID, nil
}

// ListByUID queries the uid index, newest first, following every page.
func (r *DownloadRepo) ListByUID(ctx context.Context, uid string) ([]domain.DownloadEvent, error) {
	p := dynamodb.NewQueryPaginator(r.api, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(r.uidIndex),
		KeyConditionExpression: aws.String("#uid = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#uid": "uid",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: uid},
		},
		ScanIndexForward: aws.Bool(false),
	})

	events := make([]domain.DownloadEvent, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, mapError(err, "download", uid)
		}

		var items []downloadItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal downloads: %w", err)
		}
		for _, it := range items {
			ev, err := it.toDomain()
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
		}
	}
	return events, nil
}

func (i downloadItem) toDomain() (domain.DownloadEvent, error) {
	var createdAt time.Time
	if i.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, i.CreatedAt)
		if err != nil {
			return domain.DownloadEvent{}, fmt.Errorf("download %s: parse createdAt: %w", i.ID, err)
		}
		createdAt = t.UTC()
	}
	return domain.DownloadEvent{
		ID:        i.ID,
		UID:       i.UID,
		LectureID: i.LectureID,
		Title:     i.Title,
		Src:       i.Src,
		CreatedAt: createdAt,
	}, nil
}

// Ping checks the downloads table.
func (r *DownloadRepo) Ping(ctx context.Context) error {
	return Ping(ctx, r.api, r.table)
}
