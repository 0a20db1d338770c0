package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	StoreCasasBahia   = "CASAS BAHIA"
	StoreMercadoLivre = "MERCADO LIVRE"
	StoreAmazon       = "AMAZON"
)

const defaultProductSlots = 5

// DefaultStages returns the built-in workflow template used when no stages
// config has been saved yet. Task keys are load-bearing: the derivation rules
// in internal/workflow key off them.
func DefaultStages() []Stage {
	return []Stage{
		{
			ID:   "in_draft",
			Name: "Video ideas",
			Tasks: []TaskTemplate{
				{Key: "productType", Label: "Choose product type"},
				{Key: "title", Label: "Title"},
				{Key: "selectProducts", Label: "Select products"},
				{Key: "affiliateLinks", Label: "Affiliate links selected"},
			},
		},
		{
			ID:   "pre_production",
			Name: "Pre-production",
			Tasks: []TaskTemplate{
				{Key: "productImages", Label: "Save product images"},
				{Key: "generateScript", Label: "Write script"},
			},
		},
		{
			ID:   "production",
			Name: "Production",
			Tasks: []TaskTemplate{
				{Key: "cutting", Label: "Cutting"},
				{Key: "editing", Label: "Editing"},
				{Key: "chapters", Label: "Chapters"},
				{Key: "render", Label: "Render"},
			},
		},
		{
			ID:   "pre_posting",
			Name: "Pre-posting",
			Tasks: []TaskTemplate{
				{Key: "tags", Label: "Tags"},
				{Key: "generateDescription", Label: "Write description"},
				{Key: "thumbnail", Label: "Thumbnail"},
			},
		},
	}
}

// DefaultPostPublicationChecklist is assigned to a video at the moment of
// promotion and is operator-controlled from then on.
func DefaultPostPublicationChecklist() []ChecklistItem {
	return []ChecklistItem{
		{Key: "likePoints", Label: "Add video to like points", Completed: false},
		{Key: "fixedComment", Label: "Pin product links in a comment", Completed: false},
	}
}

func DefaultAppData() AppData {
	return AppData{
		Drafts:          []Video{},
		PublishedVideos: []Video{},
		StagesConfig:    DefaultStages(),
		Theme:           ThemeDark,
	}
}

func NewID() string {
	return uuid.NewString()
}

// NewProduct returns an empty product with the three usual store slots.
func NewProduct() Product {
	return Product{
		ID: "prod-" + NewID(),
		Stores: []StoreLink{
			{ID: "store-" + NewID(), Name: StoreCasasBahia},
			{ID: "store-" + NewID(), Name: StoreMercadoLivre},
			{ID: "store-" + NewID(), Name: StoreAmazon},
		},
	}
}

// NewDraft builds an empty draft for the given stages config. The title starts
// with the product-count prefix so operators see "5 <name>" style titles from
// the first keystroke.
func NewDraft(stages []Stage, postDate string, videoNumber int) Video {
	products := make([]Product, 0, defaultProductSlots)
	for i := 0; i < defaultProductSlots; i++ {
		products = append(products, NewProduct())
	}

	checklist := make([]ChecklistItem, 0, 16)
	for _, stage := range stages {
		for _, task := range stage.Tasks {
			checklist = append(checklist, ChecklistItem{Key: task.Key, Label: task.Label})
		}
	}

	return Video{
		ID:          NewID(),
		Title:       fmt.Sprintf("%d ", len(products)),
		Products:    products,
		PostDate:    strings.TrimSpace(postDate),
		Checklist:   checklist,
		VideoNumber: videoNumber,
	}
}
