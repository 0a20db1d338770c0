package workflow

import (
	"testing"

	"video-dashboard/internal/model"
)

func namedProduct(name string) model.Product {
	return model.Product{
		ID:   "p1",
		Name: name,
		Stores: []model.StoreLink{
			{ID: "s1", Name: model.StoreAmazon, URL: "https://example.com/x"},
		},
	}
}

func videoWithChecklist() model.Video {
	return model.Video{Checklist: Reconcile(model.DefaultStages(), nil)}
}

func completedKeys(items []model.ChecklistItem) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, item := range items {
		out[item.Key] = item.Completed
	}
	return out
}

func TestDeriveRuleMatrix(t *testing.T) {
	cases := []struct {
		key  string
		fill func(v *model.Video)
	}{
		{"title", func(v *model.Video) { v.Title = "5 Melhores Air Fryers" }},
		{"productType", func(v *model.Video) { v.Title = "anything" }},
		{"selectProducts", func(v *model.Video) { v.Products = []model.Product{namedProduct("Fryer")} }},
		{"generateDescription", func(v *model.Video) { v.Description = "desc" }},
		{"tags", func(v *model.Video) { v.Tags = "air fryer, kitchen" }},
		{"thumbnail", func(v *model.Video) { v.Thumbnail = "thumb.png" }},
		{"generateScript", func(v *model.Video) { v.Script = "roteiro" }},
		{"chapters", func(v *model.Video) { v.Chapters = "00:00 intro" }},
	}

	for _, tc := range cases {
		empty := videoWithChecklist()
		if completedKeys(Derive(empty))[tc.key] {
			t.Fatalf("%s: complete on an empty video", tc.key)
		}
		filled := videoWithChecklist()
		tc.fill(&filled)
		if !completedKeys(Derive(filled))[tc.key] {
			t.Fatalf("%s: not complete after filling its field", tc.key)
		}
	}
}

func TestDeriveWhitespaceDoesNotCount(t *testing.T) {
	v := videoWithChecklist()
	v.Title = "   "
	v.Tags = "\n\t"
	got := completedKeys(Derive(v))
	if got["title"] || got["tags"] {
		t.Fatalf("whitespace-only fields must not complete tasks: %#v", got)
	}
}

func TestDeriveAffiliateLinksBivolt(t *testing.T) {
	v := videoWithChecklist()
	v.Products = []model.Product{{
		ID:   "p1",
		Name: "Fryer",
		Stores: []model.StoreLink{
			{ID: "s1", IsNotBivolt: true, URL: "https://example.com/ignored"},
		},
	}}
	if completedKeys(Derive(v))["affiliateLinks"] {
		t.Fatal("non-bivolt store without both voltage links must not complete")
	}

	v.Products[0].Stores[0].URL110V = "https://example.com/110"
	v.Products[0].Stores[0].URL220V = "https://example.com/220"
	if !completedKeys(Derive(v))["affiliateLinks"] {
		t.Fatal("both voltage links present, expected complete")
	}
}

func TestDeriveAffiliateLinksRegularStore(t *testing.T) {
	v := videoWithChecklist()
	v.Products = []model.Product{{ID: "p1", Name: "Fryer", Stores: []model.StoreLink{{ID: "s1"}}}}
	if completedKeys(Derive(v))["affiliateLinks"] {
		t.Fatal("store without URL must not complete")
	}
	v.Products[0].Stores[0].URL = "https://example.com/x"
	if !completedKeys(Derive(v))["affiliateLinks"] {
		t.Fatal("store with URL, expected complete")
	}
}

func TestDeriveNoProductsNeverReady(t *testing.T) {
	v := videoWithChecklist()
	got := completedKeys(Derive(v))
	if got["selectProducts"] || got["affiliateLinks"] {
		t.Fatal("empty product list must not complete product tasks")
	}
}

func TestDeriveLeavesCustomTasksAlone(t *testing.T) {
	v := model.Video{
		Title: "set",
		Checklist: []model.ChecklistItem{
			{Key: "custom-send-email", Label: "Send email", Completed: true},
			{Key: "title", Label: "Title"},
		},
	}
	got := Derive(v)
	if !got[0].Completed {
		t.Fatal("custom task flag must pass through untouched")
	}
	if !got[1].Completed {
		t.Fatal("derived task should follow the filled title")
	}
	if v.Checklist[1].Completed {
		t.Fatal("input checklist was mutated")
	}
}

func TestIsReservedKey(t *testing.T) {
	for _, key := range []string{"title", "productType", "selectProducts", "affiliateLinks", "generateDescription", "tags", "thumbnail", "generateScript", "chapters"} {
		if !IsReservedKey(key) {
			t.Fatalf("%s should be reserved", key)
		}
	}
	for _, key := range []string{"cutting", "editing", "render", "productImages", "custom-anything"} {
		if IsReservedKey(key) {
			t.Fatalf("%s should not be reserved", key)
		}
	}
}
