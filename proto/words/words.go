// Package words holds the gRPC contract of the Words service.
//
// Messages are protobuf well-known types, so the contract needs no generated
// code: Count takes a StringValue and Rank a Struct with "text" and
// "min_occurrences" fields. Both reply with a Struct holding a "keywords"
// list of {"word", "count"} objects.
package words

import (
	"context"
	"fmt"
	"keyword-service/words/words"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName = "keywords.Words"

	PingFullMethodName  = "/keywords.Words/Ping"
	CountFullMethodName = "/keywords.Words/Count"
	RankFullMethodName  = "/keywords.Words/Rank"
)

const (
	keywordsField       = "keywords"
	wordField           = "word"
	countField          = "count"
	textField           = "text"
	minOccurrencesField = "min_occurrences"
)

type WordsClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Count(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Rank(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type wordsClient struct {
	cc grpc.ClientConnInterface
}

func NewWordsClient(cc grpc.ClientConnInterface) WordsClient {
	return &wordsClient{cc: cc}
}

func (c *wordsClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, PingFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wordsClient) Count(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CountFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wordsClient) Rank(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RankFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type WordsServer interface {
	Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Count(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Rank(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedWordsServer can be embedded to have forward compatible implementations.
type UnimplementedWordsServer struct{}

func (UnimplementedWordsServer) Ping(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func (UnimplementedWordsServer) Count(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Count not implemented")
}

func (UnimplementedWordsServer) Rank(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Rank not implemented")
}

func RegisterWordsServer(s grpc.ServiceRegistrar, srv WordsServer) {
	s.RegisterService(&WordsServiceDesc, srv)
}

func pingHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WordsServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PingFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WordsServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func countHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WordsServer).Count(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CountFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WordsServer).Count(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func rankHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WordsServer).Rank(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RankFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WordsServer).Rank(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var WordsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WordsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: pingHandler},
		{MethodName: "Count", Handler: countHandler},
		{MethodName: "Rank", Handler: rankHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "words.proto",
}

// NewKeywordsReply packs keywords into a reply keeping their order.
func NewKeywordsReply(keywords []words.Keyword) (*structpb.Struct, error) {
	list := make([]any, len(keywords))
	for i, kw := range keywords {
		list[i] = map[string]any{wordField: kw.Word, countField: kw.Count}
	}
	return structpb.NewStruct(map[string]any{keywordsField: list})
}

// ParseKeywordsReply unpacks a reply built by NewKeywordsReply.
func ParseKeywordsReply(reply *structpb.Struct) ([]words.Keyword, error) {
	value, ok := reply.GetFields()[keywordsField]
	if !ok {
		return nil, fmt.Errorf("reply has no %q field", keywordsField)
	}
	list := value.GetListValue()
	if list == nil {
		return nil, fmt.Errorf("field %q is not a list", keywordsField)
	}
	keywords := make([]words.Keyword, 0, len(list.GetValues()))
	for i, item := range list.GetValues() {
		fields := item.GetStructValue().GetFields()
		word, okWord := fields[wordField].GetKind().(*structpb.Value_StringValue)
		count, okCount := fields[countField].GetKind().(*structpb.Value_NumberValue)
		if !okWord || !okCount {
			return nil, fmt.Errorf("malformed keyword at index %d", i)
		}
		keywords = append(keywords, words.Keyword{Word: word.StringValue, Count: int(count.NumberValue)})
	}
	return keywords, nil
}

func NewRankRequest(text string, minOccurrences int) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		textField:           text,
		minOccurrencesField: minOccurrences,
	})
}

func ParseRankRequest(in *structpb.Struct) (string, int, error) {
	fields := in.GetFields()
	text, ok := fields[textField].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", 0, fmt.Errorf("field %q must be a string", textField)
	}
	minOcc, ok := fields[minOccurrencesField].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return "", 0, fmt.Errorf("field %q must be a number", minOccurrencesField)
	}
	return text.StringValue, int(minOcc.NumberValue), nil
}
