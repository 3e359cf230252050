package grpc

import (
	"context"
	"errors"
	wordspb "keyword-service/proto/words"
	"keyword-service/words/words"
	"log/slog"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const MaxPhraseLen = 1_048_576 // 1MB

func NewServer(log *slog.Logger) *Server {
	return &Server{log: log}
}

type Server struct {
	log *slog.Logger
	wordspb.UnimplementedWordsServer
}

func (s *Server) Ping(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

func (s *Server) Count(_ context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	text := in.GetValue()
	if err := checkLen(text); err != nil {
		return nil, err
	}
	counts := words.Count(text)
	s.log.Debug("counted text", "bytes", len(text), "tokens", counts.Len())
	return reply(counts.Keywords())
}

func (s *Server) Rank(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	text, minOccurrences, err := wordspb.ParseRankRequest(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := checkLen(text); err != nil {
		return nil, err
	}
	ranked, err := words.Rank(words.Count(text), minOccurrences)
	if err != nil {
		if errors.Is(err, words.ErrBadThreshold) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return reply(ranked)
}

func checkLen(text string) error {
	if len(text) > MaxPhraseLen {
		return status.Error(
			codes.ResourceExhausted,
			"phrase is larger than "+strconv.Itoa(MaxPhraseLen),
		)
	}
	return nil
}

func reply(keywords []words.Keyword) (*structpb.Struct, error) {
	out, err := wordspb.NewKeywordsReply(keywords)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
