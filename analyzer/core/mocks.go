// GoMock doubles of the interfaces in ports.go, in the layout mockgen
// produces. Running go generate replaces this file with mockgen output.

package core

import (
	context "context"
	words "keyword-service/words/words"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockAnalyzer is a mock of Analyzer interface.
type MockAnalyzer struct {
	ctrl     *gomock.Controller
	recorder *MockAnalyzerMockRecorder
	isgomock struct{}
}

// MockAnalyzerMockRecorder is the mock recorder for MockAnalyzer.
type MockAnalyzerMockRecorder struct {
	mock *MockAnalyzer
}

// NewMockAnalyzer creates a new mock instance.
func NewMockAnalyzer(ctrl *gomock.Controller) *MockAnalyzer {
	mock := &MockAnalyzer{ctrl: ctrl}
	mock.recorder = &MockAnalyzerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAnalyzer) EXPECT() *MockAnalyzerMockRecorder {
	return m.recorder
}

// AnalyzeText mocks base method.
func (m *MockAnalyzer) AnalyzeText(ctx context.Context, label string, text string, minOccurrences int) (Report, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AnalyzeText", ctx, label, text, minOccurrences)
	ret0, _ := ret[0].(Report)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AnalyzeText indicates an expected call of AnalyzeText.
func (mr *MockAnalyzerMockRecorder) AnalyzeText(ctx, label, text, minOccurrences any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AnalyzeText", reflect.TypeOf((*MockAnalyzer)(nil).AnalyzeText), ctx, label, text, minOccurrences)
}

// AnalyzeVideo mocks base method.
func (m *MockAnalyzer) AnalyzeVideo(ctx context.Context, rawURL string, minOccurrences int) (Report, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AnalyzeVideo", ctx, rawURL, minOccurrences)
	ret0, _ := ret[0].(Report)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AnalyzeVideo indicates an expected call of AnalyzeVideo.
func (mr *MockAnalyzerMockRecorder) AnalyzeVideo(ctx, rawURL, minOccurrences any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AnalyzeVideo", reflect.TypeOf((*MockAnalyzer)(nil).AnalyzeVideo), ctx, rawURL, minOccurrences)
}

// Compare mocks base method.
func (m *MockAnalyzer) Compare(ctx context.Context, sources []Source, minOccurrences int, minDocuments int) (Comparison, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Compare", ctx, sources, minOccurrences, minDocuments)
	ret0, _ := ret[0].(Comparison)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Compare indicates an expected call of Compare.
func (mr *MockAnalyzerMockRecorder) Compare(ctx, sources, minOccurrences, minDocuments any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Compare", reflect.TypeOf((*MockAnalyzer)(nil).Compare), ctx, sources, minOccurrences, minDocuments)
}

// MockCacheManager is a mock of CacheManager interface.
type MockCacheManager struct {
	ctrl     *gomock.Controller
	recorder *MockCacheManagerMockRecorder
	isgomock struct{}
}

// MockCacheManagerMockRecorder is the mock recorder for MockCacheManager.
type MockCacheManagerMockRecorder struct {
	mock *MockCacheManager
}

// NewMockCacheManager creates a new mock instance.
func NewMockCacheManager(ctrl *gomock.Controller) *MockCacheManager {
	mock := &MockCacheManager{ctrl: ctrl}
	mock.recorder = &MockCacheManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCacheManager) EXPECT() *MockCacheManagerMockRecorder {
	return m.recorder
}

// DropCache mocks base method.
func (m *MockCacheManager) DropCache(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DropCache", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// DropCache indicates an expected call of DropCache.
func (mr *MockCacheManagerMockRecorder) DropCache(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DropCache", reflect.TypeOf((*MockCacheManager)(nil).DropCache), ctx)
}

// PruneCache mocks base method.
func (m *MockCacheManager) PruneCache(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PruneCache", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// PruneCache indicates an expected call of PruneCache.
func (mr *MockCacheManagerMockRecorder) PruneCache(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PruneCache", reflect.TypeOf((*MockCacheManager)(nil).PruneCache), ctx)
}

// MockWords is a mock of Words interface.
type MockWords struct {
	ctrl     *gomock.Controller
	recorder *MockWordsMockRecorder
	isgomock struct{}
}

// MockWordsMockRecorder is the mock recorder for MockWords.
type MockWordsMockRecorder struct {
	mock *MockWords
}

// NewMockWords creates a new mock instance.
func NewMockWords(ctrl *gomock.Controller) *MockWords {
	mock := &MockWords{ctrl: ctrl}
	mock.recorder = &MockWordsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWords) EXPECT() *MockWordsMockRecorder {
	return m.recorder
}

// Count mocks base method.
func (m *MockWords) Count(ctx context.Context, text string) (words.TokenCount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx, text)
	ret0, _ := ret[0].(words.TokenCount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockWordsMockRecorder) Count(ctx, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockWords)(nil).Count), ctx, text)
}

// MockTranscripts is a mock of Transcripts interface.
type MockTranscripts struct {
	ctrl     *gomock.Controller
	recorder *MockTranscriptsMockRecorder
	isgomock struct{}
}

// MockTranscriptsMockRecorder is the mock recorder for MockTranscripts.
type MockTranscriptsMockRecorder struct {
	mock *MockTranscripts
}

// NewMockTranscripts creates a new mock instance.
func NewMockTranscripts(ctrl *gomock.Controller) *MockTranscripts {
	mock := &MockTranscripts{ctrl: ctrl}
	mock.recorder = &MockTranscriptsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTranscripts) EXPECT() *MockTranscriptsMockRecorder {
	return m.recorder
}

// Transcript mocks base method.
func (m *MockTranscripts) Transcript(ctx context.Context, videoID string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transcript", ctx, videoID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Transcript indicates an expected call of Transcript.
func (mr *MockTranscriptsMockRecorder) Transcript(ctx, videoID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transcript", reflect.TypeOf((*MockTranscripts)(nil).Transcript), ctx, videoID)
}

// MockTitles is a mock of Titles interface.
type MockTitles struct {
	ctrl     *gomock.Controller
	recorder *MockTitlesMockRecorder
	isgomock struct{}
}

// MockTitlesMockRecorder is the mock recorder for MockTitles.
type MockTitlesMockRecorder struct {
	mock *MockTitles
}

// NewMockTitles creates a new mock instance.
func NewMockTitles(ctrl *gomock.Controller) *MockTitles {
	mock := &MockTitles{ctrl: ctrl}
	mock.recorder = &MockTitlesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTitles) EXPECT() *MockTitlesMockRecorder {
	return m.recorder
}

// Title mocks base method.
func (m *MockTitles) Title(ctx context.Context, videoID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Title", ctx, videoID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Title indicates an expected call of Title.
func (mr *MockTitlesMockRecorder) Title(ctx, videoID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Title", reflect.TypeOf((*MockTitles)(nil).Title), ctx, videoID)
}

// MockProofreader is a mock of Proofreader interface.
type MockProofreader struct {
	ctrl     *gomock.Controller
	recorder *MockProofreaderMockRecorder
	isgomock struct{}
}

// MockProofreaderMockRecorder is the mock recorder for MockProofreader.
type MockProofreaderMockRecorder struct {
	mock *MockProofreader
}

// NewMockProofreader creates a new mock instance.
func NewMockProofreader(ctrl *gomock.Controller) *MockProofreader {
	mock := &MockProofreader{ctrl: ctrl}
	mock.recorder = &MockProofreaderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProofreader) EXPECT() *MockProofreaderMockRecorder {
	return m.recorder
}

// Proofread mocks base method.
func (m *MockProofreader) Proofread(ctx context.Context, text string) (Proofread, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Proofread", ctx, text)
	ret0, _ := ret[0].(Proofread)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Proofread indicates an expected call of Proofread.
func (mr *MockProofreaderMockRecorder) Proofread(ctx, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Proofread", reflect.TypeOf((*MockProofreader)(nil).Proofread), ctx, text)
}

// MockCache is a mock of Cache interface.
type MockCache struct {
	ctrl     *gomock.Controller
	recorder *MockCacheMockRecorder
	isgomock struct{}
}

// MockCacheMockRecorder is the mock recorder for MockCache.
type MockCacheMockRecorder struct {
	mock *MockCache
}

// NewMockCache creates a new mock instance.
func NewMockCache(ctrl *gomock.Controller) *MockCache {
	mock := &MockCache{ctrl: ctrl}
	mock.recorder = &MockCacheMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCache) EXPECT() *MockCacheMockRecorder {
	return m.recorder
}

// Drop mocks base method.
func (m *MockCache) Drop(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Drop", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Drop indicates an expected call of Drop.
func (mr *MockCacheMockRecorder) Drop(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Drop", reflect.TypeOf((*MockCache)(nil).Drop), ctx)
}

// Get mocks base method.
func (m *MockCache) Get(ctx context.Context, videoID string) (Transcript, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, videoID)
	ret0, _ := ret[0].(Transcript)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockCacheMockRecorder) Get(ctx, videoID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockCache)(nil).Get), ctx, videoID)
}

// Prune mocks base method.
func (m *MockCache) Prune(ctx context.Context, before time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Prune", ctx, before)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Prune indicates an expected call of Prune.
func (mr *MockCacheMockRecorder) Prune(ctx, before any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Prune", reflect.TypeOf((*MockCache)(nil).Prune), ctx, before)
}

// Put mocks base method.
func (m *MockCache) Put(ctx context.Context, transcript Transcript) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Put", ctx, transcript)
	ret0, _ := ret[0].(error)
	return ret0
}

// Put indicates an expected call of Put.
func (mr *MockCacheMockRecorder) Put(ctx, transcript any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockCache)(nil).Put), ctx, transcript)
}

// MockPublisher is a mock of Publisher interface.
type MockPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockPublisherMockRecorder
	isgomock struct{}
}

// MockPublisherMockRecorder is the mock recorder for MockPublisher.
type MockPublisherMockRecorder struct {
	mock *MockPublisher
}

// NewMockPublisher creates a new mock instance.
func NewMockPublisher(ctrl *gomock.Controller) *MockPublisher {
	mock := &MockPublisher{ctrl: ctrl}
	mock.recorder = &MockPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPublisher) EXPECT() *MockPublisherMockRecorder {
	return m.recorder
}

// Publish mocks base method.
func (m *MockPublisher) Publish(event Event) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Publish", event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Publish indicates an expected call of Publish.
func (mr *MockPublisherMockRecorder) Publish(event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Publish", reflect.TypeOf((*MockPublisher)(nil).Publish), event)
}

// MockPinger is a mock of Pinger interface.
type MockPinger struct {
	ctrl     *gomock.Controller
	recorder *MockPingerMockRecorder
	isgomock struct{}
}

// MockPingerMockRecorder is the mock recorder for MockPinger.
type MockPingerMockRecorder struct {
	mock *MockPinger
}

// NewMockPinger creates a new mock instance.
func NewMockPinger(ctrl *gomock.Controller) *MockPinger {
	mock := &MockPinger{ctrl: ctrl}
	mock.recorder = &MockPingerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPinger) EXPECT() *MockPingerMockRecorder {
	return m.recorder
}

// Ping mocks base method.
func (m *MockPinger) Ping(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ping", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Ping indicates an expected call of Ping.
func (mr *MockPingerMockRecorder) Ping(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ping", reflect.TypeOf((*MockPinger)(nil).Ping), ctx)
}

// MockAuthenticator is a mock of Authenticator interface.
type MockAuthenticator struct {
	ctrl     *gomock.Controller
	recorder *MockAuthenticatorMockRecorder
	isgomock struct{}
}

// MockAuthenticatorMockRecorder is the mock recorder for MockAuthenticator.
type MockAuthenticatorMockRecorder struct {
	mock *MockAuthenticator
}

// NewMockAuthenticator creates a new mock instance.
func NewMockAuthenticator(ctrl *gomock.Controller) *MockAuthenticator {
	mock := &MockAuthenticator{ctrl: ctrl}
	mock.recorder = &MockAuthenticatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthenticator) EXPECT() *MockAuthenticatorMockRecorder {
	return m.recorder
}

// CreateToken mocks base method.
func (m *MockAuthenticator) CreateToken(name string, password string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateToken", name, password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateToken indicates an expected call of CreateToken.
func (mr *MockAuthenticatorMockRecorder) CreateToken(name, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateToken", reflect.TypeOf((*MockAuthenticator)(nil).CreateToken), name, password)
}

// ValidateToken mocks base method.
func (m *MockAuthenticator) ValidateToken(tokenString string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateToken", tokenString)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidateToken indicates an expected call of ValidateToken.
func (mr *MockAuthenticatorMockRecorder) ValidateToken(tokenString any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateToken", reflect.TypeOf((*MockAuthenticator)(nil).ValidateToken), tokenString)
}
