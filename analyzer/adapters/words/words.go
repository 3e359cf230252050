package words

import (
	"context"
	"fmt"
	"keyword-service/analyzer/core"
	wordspb "keyword-service/proto/words"
	"keyword-service/words/words"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Local counts words in process.
type Local struct{}

func (Local) Count(_ context.Context, text string) (words.TokenCount, error) {
	return words.Count(text), nil
}

func (Local) Ping(context.Context) error {
	return nil
}

// Client counts words with a remote Words service.
type Client struct {
	log    *slog.Logger
	conn   *grpc.ClientConn
	client wordspb.WordsClient
}

func NewClient(address string, log *slog.Logger, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff: backoff.Config{
				BaseDelay:  1 * time.Second,
				Multiplier: 1.6,
				MaxDelay:   10 * time.Second,
			},
			MinConnectTimeout: 10 * time.Second,
		}),
	}, opts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{
		log:    log,
		conn:   conn,
		client: wordspb.NewWordsClient(conn),
	}, nil
}

func (c *Client) Close() {
	if err := c.conn.Close(); err != nil {
		c.log.Warn("failed to close gRPC connection", "error", err)
	}
}

func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.client.Ping(ctx, &emptypb.Empty{}); err != nil {
		if status.Code(err) == codes.Unavailable {
			return core.ErrServiceUnavailable
		}
		return err
	}
	return nil
}

func (c *Client) Count(ctx context.Context, text string) (words.TokenCount, error) {
	reply, err := c.client.Count(ctx, wrapperspb.String(text))
	if err != nil {
		switch status.Code(err) {
		case codes.Unavailable:
			return words.TokenCount{}, core.ErrServiceUnavailable
		case codes.ResourceExhausted, codes.InvalidArgument:
			return words.TokenCount{}, fmt.Errorf("%w: %v", core.ErrBadArguments, err)
		default:
			return words.TokenCount{}, err
		}
	}
	keywords, err := wordspb.ParseKeywordsReply(reply)
	if err != nil {
		return words.TokenCount{}, fmt.Errorf("cannot parse words reply: %w", err)
	}
	counts, err := words.NewTokenCount(keywords)
	if err != nil {
		return words.TokenCount{}, fmt.Errorf("words service replied with bad counts: %w", err)
	}
	return counts, nil
}
