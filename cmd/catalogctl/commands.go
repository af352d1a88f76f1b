package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/heartmarshall/edustream-backend/internal/domain"
	"github.com/heartmarshall/edustream-backend/internal/service/catalog"
)

const usage = `usage: catalogctl [-config=<file>] <command> [flags]

commands:
  add      upload a video file and publish its record
  list     print every video record
  get      print one video record
  update   replace a video record's fields
  remove   delete a video record (the blob is kept)
  token    issue a bearer token for a uid
`

var errUsage = errors.New("invalid usage")

type catalogService interface {
	CreateVideo(ctx context.Context, input catalog.CreateVideoInput) (domain.Video, error)
	ListVideos(ctx context.Context) ([]domain.Video, error)
	GetVideo(ctx context.Context, id string) (domain.Video, error)
	UpdateVideo(ctx context.Context, input catalog.UpdateVideoInput) (domain.Video, error)
	DeleteVideo(ctx context.Context, id string) error
}

type tokenIssuer interface {
	Issue(uid string, ttl time.Duration) (string, error)
}

// videoJSON is the printed form of a record, matching the API's field names.
type videoJSON struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Subtopic string `json:"subtopic"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

func run(ctx context.Context, svc catalogService, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "add":
		return runAdd(ctx, svc, args, out)
	case "list":
		return runList(ctx, svc, out)
	case "get":
		return runGet(ctx, svc, args, out)
	case "update":
		return runUpdate(ctx, svc, args, out)
	case "remove":
		return runRemove(ctx, svc, args, out)
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func runAdd(ctx context.Context, svc catalogService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(out)
	subject := fs.String("subject", "", "subject")
	topic := fs.String("topic", "", "topic")
	subtopic := fs.String("subtopic", "", "subtopic")
	title := fs.String("title", "", "title")
	file := fs.String("file", "", "path to the .mp4 file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("%w: --file is required", errUsage)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read %s: %w", *file, err)
	}

	v, err := svc.CreateVideo(ctx, catalog.CreateVideoInput{
		Subject:  *subject,
		Topic:    *topic,
		Subtopic: *subtopic,
		Title:    *title,
		Blob:     data,
	})
	if err != nil {
		return err
	}
	return printJSON(out, toVideoJSON(v))
}

func runList(ctx context.Context, svc catalogService, out io.Writer) error {
	videos, err := svc.ListVideos(ctx)
	if err != nil {
		return err
	}
	rows := make([]videoJSON, 0, len(videos))
	for _, v := range videos {
		rows = append(rows, toVideoJSON(v))
	}
	return printJSON(out, rows)
}

func runGet(ctx context.Context, svc catalogService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(out)
	id := fs.String("id", "", "video id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v, err := svc.GetVideo(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(out, toVideoJSON(v))
}

// runUpdate loads the current record and overlays the flags that were set,
// so unchanged fields are re-supplied as-is to the full-replace update.
func runUpdate(ctx context.Context, svc catalogService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(out)
	id := fs.String("id", "", "video id")
	subject := fs.String("subject", "", "new subject")
	topic := fs.String("topic", "", "new topic")
	subtopic := fs.String("subtopic", "", "new subtopic")
	title := fs.String("title", "", "new title")
	url := fs.String("url", "", "new blob locator")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cur, err := svc.GetVideo(ctx, *id)
	if err != nil {
		return err
	}

	in := catalog.UpdateVideoInput{
		ID:       cur.ID,
		Subject:  cur.Subject,
		Topic:    cur.Topic,
		Subtopic: cur.Subtopic,
		Title:    cur.Title,
		URL:      cur.URL,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "subject":
			in.Subject = *subject
		case "topic":
			in.Topic = *topic
		case "subtopic":
			in.Subtopic = *subtopic
		case "title":
			in.Title = *title
		case "url":
			in.URL = *url
		}
	})

	v, err := svc.UpdateVideo(ctx, in)
	if err != nil {
		return err
	}
	return printJSON(out, toVideoJSON(v))
}

func runRemove(ctx context.Context, svc catalogService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	fs.SetOutput(out)
	id := fs.String("id", "", "video id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := svc.DeleteVideo(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(out, "removed %s\n", *id)
	return nil
}

func runToken(tokens tokenIssuer, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(out)
	uid := fs.String("uid", "", "user id to embed as the token subject")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *uid == "" {
		return fmt.Errorf("%w: --uid is required", errUsage)
	}

	token, err := tokens.Issue(*uid, *ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func toVideoJSON(v domain.Video) videoJSON {
	return videoJSON{
		ID:       v.ID,
		Subject:  v.Subject,
		Topic:    v.Topic,
		Subtopic: v.Subtopic,
		Title:    v.Title,
		URL:      v.URL,
	}
}
