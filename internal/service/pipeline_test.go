package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsintel/internal/config"
	"newsintel/internal/domain"
	"newsintel/internal/oracle"
	"newsintel/internal/service/mocks"
	"newsintel/testdata/utils"
)

type PipelineTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockContentSource
	oracleCli *mocks.MockOracle
	articles  *mocks.MockArticleStore
	vocab     *mocks.MockVocabStore
	insights  *mocks.MockInsightStore
	trends    *mocks.MockTrendStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	service *PipelineService
	cfg     config.PipelineConfig
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockContentSource(s.ctrl)
	s.oracleCli = mocks.NewMockOracle(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.vocab = mocks.NewMockVocabStore(s.ctrl)
	s.insights = mocks.NewMockInsightStore(s.ctrl)
	s.trends = mocks.NewMockTrendStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.PipelineConfig{
		MinContentLength:     100,
		EnrichBatchSize:      5,
		EnrichBatchPause:     0,
		InsightWindowDays:    7,
		InsightArticleLimit:  20,
		TrendLookbackDays:    30,
		NameOverlapThreshold: 0.5,
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.source.EXPECT().Name().Return("rss").AnyTimes()

	s.service = NewPipelineService(PipelineDeps{
		Source:      s.source,
		Oracle:      s.oracleCli,
		Articles:    s.articles,
		Vocab:       s.vocab,
		Insights:    s.insights,
		Trends:      s.trends,
		TxManager:   s.txManager,
		Publisher:   s.publisher,
		Enricher:    NewEnricher(s.oracleCli, s.cfg, logger),
		TrendEngine: NewTrendEngine(s.trends, s.articles, s.vocab, s.cfg, logger),
		Synthesizer: NewSynthesizer(s.oracleCli, s.articles, s.insights, s.cfg, logger),
		Config:      s.cfg,
		Logger:      logger,
	})
}

func (s *PipelineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func testItem(url string) domain.ContentItem {
	return domain.ContentItem{
		URL:     url,
		Title:   "Workforce shift accelerates",
		Source:  "example.com",
		Content: strings.Repeat("body ", 30),
	}
}

// expectQuietAnalysis wires the downstream stages for a run where trends and
// insights have nothing to chew on.
func (s *PipelineTestSuite) expectQuietAnalysis(ctx context.Context) {
	s.articles.EXPECT().PublishedBetween(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
	s.trends.EXPECT().All(ctx).Return(nil, nil)
	s.articles.EXPECT().TopBySignalSince(ctx, gomock.Any(), 20).Return(nil, nil)
}

func (s *PipelineTestSuite) TestRun_NewArticle() {
	ctx := context.Background()
	item := testItem("https://example.com/a")

	s.source.EXPECT().FetchAll(ctx).Return([]domain.ContentItem{item}, nil)
	s.articles.EXPECT().ExistingURLs(ctx, []string{item.URL}).Return(map[string]struct{}{}, nil)

	s.oracleCli.EXPECT().AnalyzeArticle(ctx, item.Title, item.Content, item.URL).Return(&oracle.Annotation{
		Summary:        "summary",
		PrimaryTheme:   "Future of Work",
		Sectors:        []string{"Technology"},
		SignalStrength: utils.Ptr(0.9),
	}, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)

	var inserted *domain.Article
	s.articles.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) (int64, error) {
			inserted = a
			return 100, nil
		},
	)
	s.vocab.EXPECT().ThemeIDs(ctx, []string{"Future of Work"}).Return(map[string]int64{"Future of Work": 6}, nil)
	s.vocab.EXPECT().LinkThemes(ctx, int64(100), []int64{6}).Return(nil)
	s.vocab.EXPECT().SectorIDs(ctx, []string{"Technology"}).Return(map[string]int64{"Technology": 1}, nil)
	s.vocab.EXPECT().LinkSectors(ctx, int64(100), []int64{1}).Return(nil)

	s.expectQuietAnalysis(ctx)

	s.publisher.EXPECT().PublishArticle(ctx, gomock.Any()).Return(nil)

	report, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(domain.RunStatusSuccess, report.Status)
	s.Equal(1, report.Fetched)
	s.Equal(1, report.NewArticles)
	s.Empty(report.Errors)
	s.NotEmpty(report.RunID)

	s.Require().NotNil(inserted)
	s.True(inserted.IsFeatured)
	s.Equal("summary", inserted.Summary)
}

func (s *PipelineTestSuite) TestRun_FeaturedBoundary() {
	ctx := context.Background()
	at := testItem("https://example.com/at")
	above := testItem("https://example.com/above")

	s.source.EXPECT().FetchAll(ctx).Return([]domain.ContentItem{at, above}, nil)
	s.articles.EXPECT().ExistingURLs(ctx, gomock.Any()).Return(map[string]struct{}{}, nil)

	s.oracleCli.EXPECT().AnalyzeArticle(ctx, gomock.Any(), gomock.Any(), at.URL).
		Return(&oracle.Annotation{SignalStrength: utils.Ptr(0.8)}, nil)
	s.oracleCli.EXPECT().AnalyzeArticle(ctx, gomock.Any(), gomock.Any(), above.URL).
		Return(&oracle.Annotation{SignalStrength: utils.Ptr(0.81)}, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)

	featured := map[string]bool{}
	s.articles.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) (int64, error) {
			featured[a.URL] = a.IsFeatured
			return int64(len(featured)), nil
		},
	).Times(2)

	s.expectQuietAnalysis(ctx)
	s.publisher.EXPECT().PublishArticle(ctx, gomock.Any()).Return(nil).Times(2)

	report, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(2, report.NewArticles)
	s.False(featured["https://example.com/at"])
	s.True(featured["https://example.com/above"])
}

func (s *PipelineTestSuite) TestRun_NothingNew() {
	ctx := context.Background()
	item := testItem("https://example.com/a")

	s.source.EXPECT().FetchAll(ctx).Return([]domain.ContentItem{item}, nil)
	s.articles.EXPECT().ExistingURLs(ctx, []string{item.URL}).Return(map[string]struct{}{
		item.URL: {},
	}, nil)

	report, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(domain.RunStatusSuccess, report.Status)
	s.Equal(1, report.Fetched)
	s.Equal(0, report.NewArticles)
}

func (s *PipelineTestSuite) TestRun_FetchFailureRecorded() {
	ctx := context.Background()

	s.source.EXPECT().FetchAll(ctx).Return(nil, []domain.SourceFetchError{
		{Feed: "https://example.com/feed.xml", Err: errors.New("connection refused")},
	})
	s.articles.EXPECT().ExistingURLs(ctx, []string{}).Return(map[string]struct{}{}, nil)

	report, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(domain.RunStatusSuccess, report.Status)
	s.Require().Len(report.Errors, 1)
	s.Equal("fetch", report.Errors[0].Stage)
	s.Equal("https://example.com/feed.xml", report.Errors[0].Ref)
}

func (s *PipelineTestSuite) TestRun_EnrichmentFailureExcludesItem() {
	ctx := context.Background()
	good := testItem("https://example.com/good")
	bad := testItem("https://example.com/bad")

	s.source.EXPECT().FetchAll(ctx).Return([]domain.ContentItem{good, bad}, nil)
	s.articles.EXPECT().ExistingURLs(ctx, gomock.Any()).Return(map[string]struct{}{}, nil)

	s.oracleCli.EXPECT().AnalyzeArticle(ctx, gomock.Any(), gomock.Any(), good.URL).
		Return(&oracle.Annotation{Summary: "ok"}, nil)
	s.oracleCli.EXPECT().AnalyzeArticle(ctx, gomock.Any(), gomock.Any(), bad.URL).
		Return(nil, errors.New("oracle timeout"))

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.articles.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) (int64, error) {
			s.Equal(good.URL, a.URL)
			return 1, nil
		},
	)
	s.expectQuietAnalysis(ctx)
	s.publisher.EXPECT().PublishArticle(ctx, gomock.Any()).Return(nil)

	report, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(1, report.NewArticles)
	s.Require().Len(report.Errors, 1)
	s.Equal("enrich", report.Errors[0].Stage)
	s.Equal(bad.URL, report.Errors[0].Ref)
}

func (s *PipelineTestSuite) TestRun_StoreFailureRollsBack() {
	ctx := context.Background()
	item := testItem("https://example.com/a")

	s.source.EXPECT().FetchAll(ctx).Return([]domain.ContentItem{item}, nil)
	s.articles.EXPECT().ExistingURLs(ctx, []string{item.URL}).Return(map[string]struct{}{}, nil)
	s.oracleCli.EXPECT().AnalyzeArticle(ctx, gomock.Any(), gomock.Any(), item.URL).
		Return(&oracle.Annotation{}, nil)

	dbErr := errors.New("constraint violation")
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.articles.EXPECT().Insert(ctx, gomock.Any()).Return(int64(0), dbErr)

	report, err := s.service.Run(ctx)

	s.Error(err)
	s.ErrorIs(err, dbErr)
	s.Equal(domain.RunStatusError, report.Status)
	s.NotEmpty(report.Message)
}

func (s *PipelineTestSuite) TestRun_TrendDetectionFailureIsRecoverable() {
	ctx := context.Background()
	item := testItem("https://example.com/a")

	s.source.EXPECT().FetchAll(ctx).Return([]domain.ContentItem{item}, nil)
	s.articles.EXPECT().ExistingURLs(ctx, []string{item.URL}).Return(map[string]struct{}{}, nil)
	s.oracleCli.EXPECT().AnalyzeArticle(ctx, gomock.Any(), gomock.Any(), item.URL).
		Return(&oracle.Annotation{}, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.articles.EXPECT().Insert(ctx, gomock.Any()).Return(int64(1), nil)

	stored := domain.Article{ID: 1, ContentItem: domain.ContentItem{Title: "recent"}}
	s.articles.EXPECT().PublishedBetween(ctx, gomock.Any(), gomock.Any()).Return([]domain.Article{stored}, nil)
	s.trends.EXPECT().Names(ctx).Return(nil, nil)
	s.oracleCli.EXPECT().DetectTrends(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("rate limited"))
	s.trends.EXPECT().All(ctx).Return(nil, nil)
	s.articles.EXPECT().TopBySignalSince(ctx, gomock.Any(), 20).Return(nil, nil)

	s.publisher.EXPECT().PublishArticle(ctx, gomock.Any()).Return(nil)

	report, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(domain.RunStatusSuccess, report.Status)
	s.Require().Len(report.Errors, 1)
	s.Equal("trends", report.Errors[0].Stage)
	s.Equal(0, report.TrendsCreated)
}

func (s *PipelineTestSuite) TestRun_PublishFailureRecorded() {
	ctx := context.Background()
	item := testItem("https://example.com/a")

	s.source.EXPECT().FetchAll(ctx).Return([]domain.ContentItem{item}, nil)
	s.articles.EXPECT().ExistingURLs(ctx, []string{item.URL}).Return(map[string]struct{}{}, nil)
	s.oracleCli.EXPECT().AnalyzeArticle(ctx, gomock.Any(), gomock.Any(), item.URL).
		Return(&oracle.Annotation{}, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.articles.EXPECT().Insert(ctx, gomock.Any()).Return(int64(1), nil)
	s.expectQuietAnalysis(ctx)

	s.publisher.EXPECT().PublishArticle(ctx, gomock.Any()).Return(errors.New("broker down"))

	report, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(domain.RunStatusSuccess, report.Status)
	s.Equal(1, report.NewArticles)
	s.Require().Len(report.Errors, 1)
	s.Equal("publish", report.Errors[0].Stage)
}
