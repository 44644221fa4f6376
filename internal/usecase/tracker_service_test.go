package usecase

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/sugarcheck/backend/internal/domain"
)

// In-memory repository fakes backing the tracker tests.

type fakeFoodRepo struct {
	records []domain.FoodRecord
	nextID  uint
}

func (f *fakeFoodRepo) SaveOrGet(ctx context.Context, rec *domain.FoodRecord) (*domain.FoodRecord, error) {
	for i := range f.records {
		if f.records[i].Name == rec.Name && f.records[i].ExternalID == rec.ExternalID {
			return &f.records[i], nil
		}
	}
	f.nextID++
	rec.ID = f.nextID
	f.records = append(f.records, *rec)
	return rec, nil
}

func (f *fakeFoodRepo) SearchByName(ctx context.Context, query string, limit int) ([]domain.FoodRecord, error) {
	var out []domain.FoodRecord
	for _, r := range f.records {
		if len(out) >= limit {
			break
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeTrackingRepo struct {
	entries []domain.TrackingEntry
	nextID  uint
}

func (f *fakeTrackingRepo) Insert(ctx context.Context, entry *domain.TrackingEntry) error {
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeTrackingRepo) ListByUserAndDate(ctx context.Context, userID uint, date string) ([]domain.TrackingEntry, error) {
	var out []domain.TrackingEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTrackingRepo) ListByUserAndRange(ctx context.Context, userID uint, from, to string) ([]domain.TrackingEntry, error) {
	var out []domain.TrackingEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTrackingRepo) Delete(ctx context.Context, id uint) (*domain.TrackingEntry, error) {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTrackingRepo) ClearDay(ctx context.Context, userID uint, date string) error {
	var kept []domain.TrackingEntry
	for _, e := range f.entries {
		if e.UserID != userID || e.Date != date {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

type fakeFavoriteRepo struct {
	favorites []domain.FavoriteFood
	nextID    uint
}

func (f *fakeFavoriteRepo) Add(ctx context.Context, fav *domain.FavoriteFood) error {
	f.nextID++
	fav.ID = f.nextID
	f.favorites = append(f.favorites, *fav)
	return nil
}

func (f *fakeFavoriteRepo) FindByUserAndName(ctx context.Context, userID uint, name string) (*domain.FavoriteFood, error) {
	for i := range f.favorites {
		if f.favorites[i].UserID == userID && f.favorites[i].FoodName == name {
			return &f.favorites[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeFavoriteRepo) ListByUser(ctx context.Context, userID uint) ([]domain.FavoriteFood, error) {
	var out []domain.FavoriteFood
	for _, fav := range f.favorites {
		if fav.UserID == userID {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (f *fakeFavoriteRepo) Remove(ctx context.Context, id uint) error {
	for i, fav := range f.favorites {
		if fav.ID == id {
			f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeFavoriteRepo) Clear(ctx context.Context, userID uint) error {
	var kept []domain.FavoriteFood
	for _, fav := range f.favorites {
		if fav.UserID != userID {
			kept = append(kept, fav)
		}
	}
	f.favorites = kept
	return nil
}

type fakeInsightRepo struct {
	insights map[string]*domain.DailyInsight // keyed by date, single user in tests
}

func newFakeInsightRepo() *fakeInsightRepo {
	return &fakeInsightRepo{insights: map[string]*domain.DailyInsight{}}
}

func (f *fakeInsightRepo) Upsert(ctx context.Context, insight *domain.DailyInsight) error {
	f.insights[insight.Date] = insight
	return nil
}

func (f *fakeInsightRepo) Delete(ctx context.Context, userID uint, date string) error {
	if _, ok := f.insights[date]; !ok {
		return domain.ErrNotFound
	}
	delete(f.insights, date)
	return nil
}

func (f *fakeInsightRepo) ListRecent(ctx context.Context, userID uint, days int) ([]domain.DailyInsight, error) {
	var out []domain.DailyInsight
	for _, in := range f.insights {
		if len(out) >= days {
			break
		}
		out = append(out, *in)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uint]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uint]*domain.User{}}
	repo.users[1] = &domain.User{
		Model:            gorm.Model{ID: 1},
		Username:         "default",
		DailySugarLimitG: 25,
	}
	return repo
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) EnsureDefault(ctx context.Context) (*domain.User, error) {
	return f.users[1], nil
}

func (f *fakeUserRepo) UpdateDailyLimit(ctx context.Context, id uint, limitG float64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	user.DailySugarLimitG = limitG
	return user, nil
}

type trackerFixture struct {
	service   *TrackerService
	foods     *fakeFoodRepo
	entries   *fakeTrackingRepo
	favorites *fakeFavoriteRepo
	insights  *fakeInsightRepo
	users     *fakeUserRepo
}

func newTrackerFixture() *trackerFixture {
	f := &trackerFixture{
		foods:     &fakeFoodRepo{},
		entries:   &fakeTrackingRepo{},
		favorites: &fakeFavoriteRepo{},
		insights:  newFakeInsightRepo(),
		users:     newFakeUserRepo(),
	}
	f.service = NewTrackerService(f.foods, f.entries, f.favorites, f.insights, f.users, 25, nil)
	return f
}

func appleItem() domain.FoodItem {
	return domain.FoodItem{
		ExternalID: "1001",
		Name:       "Apple, raw",
		Source:     domain.SourceUSDA,
		Nutrients:  domain.Nutrients{SugarG: 10, Calories: 52},
	}
}

func TestTrackerServiceTrackFood(t *testing.T) {
	ctx := context.Background()

	t.Run("scales nutrients to the portion", func(t *testing.T) {
		f := newTrackerFixture()

		entry, err := f.service.TrackFood(ctx, TrackRequest{
			Food:     appleItem(),
			PortionG: 250,
			Date:     "2026-08-20",
		})
		if err != nil {
			t.Fatalf("TrackFood() error = %v, want nil", err)
		}
		if entry.SugarG != 25 {
			t.Errorf("SugarG = %v, want 25 (10g/100g * 250g)", entry.SugarG)
		}
		if entry.Calories != 130 {
			t.Errorf("Calories = %v, want 130", entry.Calories)
		}
		if entry.UserID != 1 {
			t.Errorf("UserID = %d, want default user 1", entry.UserID)
		}
	})

	t.Run("reuses existing food record", func(t *testing.T) {
		f := newTrackerFixture()

		first, err := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: 100, Date: "2026-08-20"})
		if err != nil {
			t.Fatalf("TrackFood() error = %v", err)
		}
		second, err := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: 50, Date: "2026-08-20"})
		if err != nil {
			t.Fatalf("TrackFood() error = %v", err)
		}
		if first.FoodRecordID != second.FoodRecordID {
			t.Errorf("FoodRecordID differs: %d vs %d", first.FoodRecordID, second.FoodRecordID)
		}
		if len(f.foods.records) != 1 {
			t.Errorf("got %d food records, want 1", len(f.foods.records))
		}
	})

	t.Run("insight equals sum of entries", func(t *testing.T) {
		f := newTrackerFixture()

		for _, portion := range []float64{100, 150} {
			if _, err := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: portion, Date: "2026-08-20"}); err != nil {
				t.Fatalf("TrackFood() error = %v", err)
			}
		}

		insight := f.insights.insights["2026-08-20"]
		if insight == nil {
			t.Fatal("expected insight for 2026-08-20")
		}
		if insight.TotalSugarG != 25 {
			t.Errorf("TotalSugarG = %v, want 25", insight.TotalSugarG)
		}
		if insight.FoodCount != 2 {
			t.Errorf("FoodCount = %d, want 2", insight.FoodCount)
		}
		if insight.ExceededLimit != false {
			t.Error("ExceededLimit = true, want false at exactly the limit")
		}
	})

	t.Run("marks insight exceeded above the user limit", func(t *testing.T) {
		f := newTrackerFixture()

		if _, err := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: 300, Date: "2026-08-20"}); err != nil {
			t.Fatalf("TrackFood() error = %v", err)
		}

		insight := f.insights.insights["2026-08-20"]
		if insight == nil || !insight.ExceededLimit {
			t.Errorf("insight = %+v, want ExceededLimit true for 30g over a 25g limit", insight)
		}
	})

	t.Run("rejects missing name, bad portion and bad date", func(t *testing.T) {
		f := newTrackerFixture()

		cases := []TrackRequest{
			{Food: domain.FoodItem{}, PortionG: 100},
			{Food: appleItem(), PortionG: 0},
			{Food: appleItem(), PortionG: 2000},
			{Food: appleItem(), PortionG: 100, Date: "20-08-2026"},
		}
		for _, req := range cases {
			if _, err := f.service.TrackFood(ctx, req); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("TrackFood(%+v) error = %v, want ErrInvalidInput", req, err)
			}
		}
		if len(f.entries.entries) != 0 {
			t.Errorf("got %d entries, want 0", len(f.entries.entries))
		}
	})
}

func TestTrackerServiceRemoveEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("refreshes insight after removal", func(t *testing.T) {
		f := newTrackerFixture()

		first, _ := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: 100, Date: "2026-08-20"})
		if _, err := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: 150, Date: "2026-08-20"}); err != nil {
			t.Fatalf("TrackFood() error = %v", err)
		}

		if err := f.service.RemoveEntry(ctx, first.ID); err != nil {
			t.Fatalf("RemoveEntry() error = %v, want nil", err)
		}

		insight := f.insights.insights["2026-08-20"]
		if insight == nil {
			t.Fatal("expected insight to survive partial removal")
		}
		if insight.TotalSugarG != 15 {
			t.Errorf("TotalSugarG = %v, want 15", insight.TotalSugarG)
		}
		if insight.FoodCount != 1 {
			t.Errorf("FoodCount = %d, want 1", insight.FoodCount)
		}
	})

	t.Run("removing the last entry deletes the insight", func(t *testing.T) {
		f := newTrackerFixture()

		entry, _ := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: 100, Date: "2026-08-20"})
		if err := f.service.RemoveEntry(ctx, entry.ID); err != nil {
			t.Fatalf("RemoveEntry() error = %v, want nil", err)
		}
		if _, ok := f.insights.insights["2026-08-20"]; ok {
			t.Error("expected insight to be deleted for empty day")
		}
	})

	t.Run("unknown entry returns not found", func(t *testing.T) {
		f := newTrackerFixture()

		if err := f.service.RemoveEntry(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("RemoveEntry(42) error = %v, want ErrNotFound", err)
		}
	})
}

func TestTrackerServiceClearDay(t *testing.T) {
	ctx := context.Background()

	f := newTrackerFixture()
	if _, err := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: 100, Date: "2026-08-20"}); err != nil {
		t.Fatalf("TrackFood() error = %v", err)
	}
	if _, err := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: 100, Date: "2026-08-21"}); err != nil {
		t.Fatalf("TrackFood() error = %v", err)
	}

	if err := f.service.ClearDay(ctx, 1, "2026-08-20"); err != nil {
		t.Fatalf("ClearDay() error = %v, want nil", err)
	}

	if _, ok := f.insights.insights["2026-08-20"]; ok {
		t.Error("expected insight removed for cleared day")
	}
	if _, ok := f.insights.insights["2026-08-21"]; !ok {
		t.Error("expected other day's insight to survive")
	}
	if len(f.entries.entries) != 1 {
		t.Errorf("got %d entries, want 1", len(f.entries.entries))
	}
}

func TestTrackerServiceEntriesRange(t *testing.T) {
	ctx := context.Background()

	t.Run("bounds are inclusive", func(t *testing.T) {
		f := newTrackerFixture()
		for _, date := range []string{"2026-08-18", "2026-08-19", "2026-08-20", "2026-08-21"} {
			if _, err := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: 100, Date: date}); err != nil {
				t.Fatalf("TrackFood() error = %v", err)
			}
		}

		entries, err := f.service.EntriesRange(ctx, 1, "2026-08-19", "2026-08-20")
		if err != nil {
			t.Fatalf("EntriesRange() error = %v, want nil", err)
		}
		if len(entries) != 2 {
			t.Errorf("got %d entries, want 2", len(entries))
		}
	})

	t.Run("rejects missing or inverted bounds", func(t *testing.T) {
		f := newTrackerFixture()

		cases := [][2]string{
			{"", "2026-08-20"},
			{"2026-08-19", ""},
			{"2026-08-21", "2026-08-19"},
			{"19-08-2026", "2026-08-20"},
		}
		for _, c := range cases {
			if _, err := f.service.EntriesRange(ctx, 1, c[0], c[1]); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("EntriesRange(%q, %q) error = %v, want ErrInvalidInput", c[0], c[1], err)
			}
		}
	})
}

func TestTrackerServiceDailySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("totals against the user limit", func(t *testing.T) {
		f := newTrackerFixture()
		for _, portion := range []float64{100, 200} {
			if _, err := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: portion, Date: "2026-08-20"}); err != nil {
				t.Fatalf("TrackFood() error = %v", err)
			}
		}

		summary, err := f.service.DailySummary(ctx, 1, "2026-08-20")
		if err != nil {
			t.Fatalf("DailySummary() error = %v, want nil", err)
		}
		if summary.TotalSugarG != 30 {
			t.Errorf("TotalSugarG = %v, want 30", summary.TotalSugarG)
		}
		if summary.Teaspoons != 7.5 {
			t.Errorf("Teaspoons = %v, want 7.5", summary.Teaspoons)
		}
		if summary.LimitG != 25 {
			t.Errorf("LimitG = %v, want 25", summary.LimitG)
		}
		if summary.LimitPct != 120 {
			t.Errorf("LimitPct = %v, want 120", summary.LimitPct)
		}
		if !summary.Exceeded {
			t.Error("Exceeded = false, want true")
		}
		if len(summary.Entries) != 2 {
			t.Errorf("got %d entries, want 2", len(summary.Entries))
		}
	})

	t.Run("empty day", func(t *testing.T) {
		f := newTrackerFixture()

		summary, err := f.service.DailySummary(ctx, 1, "2026-08-20")
		if err != nil {
			t.Fatalf("DailySummary() error = %v, want nil", err)
		}
		if summary.TotalSugarG != 0 || summary.Exceeded {
			t.Errorf("summary = %+v, want zero totals", summary)
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		f := newTrackerFixture()
		if _, err := f.service.DailySummary(ctx, 1, "not-a-date"); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("DailySummary() error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestTrackerServiceTrend(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates insights", func(t *testing.T) {
		f := newTrackerFixture()
		f.insights.insights["2026-08-18"] = &domain.DailyInsight{UserID: 1, Date: "2026-08-18", TotalSugarG: 10}
		f.insights.insights["2026-08-19"] = &domain.DailyInsight{UserID: 1, Date: "2026-08-19", TotalSugarG: 30, ExceededLimit: true}
		f.insights.insights["2026-08-20"] = &domain.DailyInsight{UserID: 1, Date: "2026-08-20", TotalSugarG: 20}

		report, err := f.service.Trend(ctx, 1, 7)
		if err != nil {
			t.Fatalf("Trend() error = %v, want nil", err)
		}
		if report.AverageSugarG != 20 {
			t.Errorf("AverageSugarG = %v, want 20", report.AverageSugarG)
		}
		if report.MaxSugarG != 30 {
			t.Errorf("MaxSugarG = %v, want 30", report.MaxSugarG)
		}
		if report.DaysOverLimit != 1 {
			t.Errorf("DaysOverLimit = %d, want 1", report.DaysOverLimit)
		}
		if report.CompliancePct < 66 || report.CompliancePct > 67 {
			t.Errorf("CompliancePct = %v, want ~66.7", report.CompliancePct)
		}
	})

	t.Run("empty history", func(t *testing.T) {
		f := newTrackerFixture()

		report, err := f.service.Trend(ctx, 1, 7)
		if err != nil {
			t.Fatalf("Trend() error = %v, want nil", err)
		}
		if len(report.Insights) != 0 || report.AverageSugarG != 0 {
			t.Errorf("report = %+v, want empty", report)
		}
	})

	t.Run("rejects out-of-range day counts", func(t *testing.T) {
		f := newTrackerFixture()
		for _, days := range []int{0, -1, 366} {
			if _, err := f.service.Trend(ctx, 1, days); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("Trend(days=%d) error = %v, want ErrInvalidInput", days, err)
			}
		}
	})
}

func TestTrackerServiceFavorites(t *testing.T) {
	ctx := context.Background()

	t.Run("add list remove round trip", func(t *testing.T) {
		f := newTrackerFixture()

		fav, err := f.service.AddFavorite(ctx, 1, appleItem())
		if err != nil {
			t.Fatalf("AddFavorite() error = %v, want nil", err)
		}
		if fav.FoodName != "Apple, raw" || fav.SugarG != 10 {
			t.Errorf("favorite = %+v, want apple with 10g sugar", fav)
		}

		favorites, err := f.service.ListFavorites(ctx, 1)
		if err != nil {
			t.Fatalf("ListFavorites() error = %v", err)
		}
		if len(favorites) != 1 {
			t.Fatalf("got %d favorites, want 1", len(favorites))
		}

		if err := f.service.RemoveFavorite(ctx, fav.ID); err != nil {
			t.Fatalf("RemoveFavorite() error = %v, want nil", err)
		}
		favorites, _ = f.service.ListFavorites(ctx, 1)
		if len(favorites) != 0 {
			t.Errorf("got %d favorites after removal, want 0", len(favorites))
		}
	})

	t.Run("re-adding is a no-op", func(t *testing.T) {
		f := newTrackerFixture()

		first, _ := f.service.AddFavorite(ctx, 1, appleItem())
		second, err := f.service.AddFavorite(ctx, 1, appleItem())
		if err != nil {
			t.Fatalf("AddFavorite() error = %v, want nil", err)
		}
		if first.ID != second.ID {
			t.Errorf("second add returned id %d, want existing id %d", second.ID, first.ID)
		}
		if len(f.favorites.favorites) != 1 {
			t.Errorf("got %d favorites, want 1", len(f.favorites.favorites))
		}
	})

	t.Run("clear removes everything", func(t *testing.T) {
		f := newTrackerFixture()

		if _, err := f.service.AddFavorite(ctx, 1, appleItem()); err != nil {
			t.Fatalf("AddFavorite() error = %v", err)
		}
		banana := appleItem()
		banana.Name = "Banana, raw"
		banana.ExternalID = "1002"
		if _, err := f.service.AddFavorite(ctx, 1, banana); err != nil {
			t.Fatalf("AddFavorite() error = %v", err)
		}

		if err := f.service.ClearFavorites(ctx, 1); err != nil {
			t.Fatalf("ClearFavorites() error = %v, want nil", err)
		}
		favorites, _ := f.service.ListFavorites(ctx, 1)
		if len(favorites) != 0 {
			t.Errorf("got %d favorites after clear, want 0", len(favorites))
		}
	})

	t.Run("rejects favorite without a name", func(t *testing.T) {
		f := newTrackerFixture()
		if _, err := f.service.AddFavorite(ctx, 1, domain.FoodItem{}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("AddFavorite() error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestTrackerServiceSearchHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("returns previously tracked foods", func(t *testing.T) {
		f := newTrackerFixture()
		if _, err := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: 100, Date: "2026-08-20"}); err != nil {
			t.Fatalf("TrackFood() error = %v", err)
		}

		records, err := f.service.SearchHistory(ctx, "apple", 10)
		if err != nil {
			t.Fatalf("SearchHistory() error = %v, want nil", err)
		}
		if len(records) != 1 {
			t.Errorf("got %d records, want 1", len(records))
		}
	})

	t.Run("rejects short queries", func(t *testing.T) {
		f := newTrackerFixture()
		if _, err := f.service.SearchHistory(ctx, "a", 10); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("SearchHistory() error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestTrackerServiceUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("zero user id falls back to default", func(t *testing.T) {
		f := newTrackerFixture()

		user, err := f.service.GetUser(ctx, 0)
		if err != nil {
			t.Fatalf("GetUser(0) error = %v, want nil", err)
		}
		if user.ID != 1 {
			t.Errorf("user.ID = %d, want 1", user.ID)
		}
	})

	t.Run("updates daily limit and affects the summary", func(t *testing.T) {
		f := newTrackerFixture()

		user, err := f.service.UpdateDailyLimit(ctx, 1, 36)
		if err != nil {
			t.Fatalf("UpdateDailyLimit() error = %v, want nil", err)
		}
		if user.DailySugarLimitG != 36 {
			t.Errorf("DailySugarLimitG = %v, want 36", user.DailySugarLimitG)
		}

		if _, err := f.service.TrackFood(ctx, TrackRequest{Food: appleItem(), PortionG: 300, Date: "2026-08-20"}); err != nil {
			t.Fatalf("TrackFood() error = %v", err)
		}
		summary, err := f.service.DailySummary(ctx, 1, "2026-08-20")
		if err != nil {
			t.Fatalf("DailySummary() error = %v", err)
		}
		if summary.LimitG != 36 {
			t.Errorf("LimitG = %v, want 36", summary.LimitG)
		}
		if summary.Exceeded {
			t.Error("Exceeded = true, want false for 30g under a 36g limit")
		}
	})

	t.Run("rejects out-of-range limits", func(t *testing.T) {
		f := newTrackerFixture()
		for _, limit := range []float64{0, -5, 201} {
			if _, err := f.service.UpdateDailyLimit(ctx, 1, limit); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("UpdateDailyLimit(%v) error = %v, want ErrInvalidInput", limit, err)
			}
		}
	})
}
