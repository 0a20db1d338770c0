package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"video-dashboard/internal/model"
	"video-dashboard/internal/workflow"
)

func runProducts(args []string) error {
	if len(args) == 0 {
		printProductsUsage()
		return nil
	}
	switch args[0] {
	case "list":
		return runProductsList(args[1:])
	case "set", "add", "remove", "set-store", "add-store", "remove-store":
		return runProductsEdit(args[0], args[1:])
	case "help", "-h", "--help":
		printProductsUsage()
		return nil
	default:
		printProductsUsage()
		return fmt.Errorf("unknown products subcommand %q", args[0])
	}
}

func printProductsUsage() {
	fmt.Println("products: manage a video's product slots and store links")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  list --video <ref>                                 show slots and store links")
	fmt.Println("  set --video <ref> --slot <n> --name <name>         name a product slot")
	fmt.Println("  add --video <ref> [--name <name>]                  append a product slot")
	fmt.Println("  remove --video <ref> --slot <n>                    drop a product slot")
	fmt.Println("  add-store --video <ref> --slot <n> --store <name>")
	fmt.Println("  remove-store --video <ref> --slot <n> --store <name>")
	fmt.Println("  set-store --video <ref> --slot <n> --store <name> \\")
	fmt.Println("            [--url <u>] [--url-110 <u>] [--url-220 <u>] [--not-bivolt[=false]]")
	fmt.Println()
	fmt.Println("Naming every slot completes the select-products task; filling every store")
	fmt.Println("link completes affiliate links. Adding or removing a slot renumbers the")
	fmt.Println("title's product-count prefix.")
}

func runProductsList(args []string) error {
	fs := flag.NewFlagSet("products list", flag.ContinueOnError)
	state := addStateFlag(fs)
	video := fs.String("video", "", "video id, unique id prefix, or #number")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*video) == "" {
		return errors.New("--video is required")
	}

	lib, _, err := loadLibrary(*state)
	if err != nil {
		return err
	}
	v, err := resolveVideo(lib, *video)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(v.Products)
	}

	fmt.Printf("products of %q:\n", v.Title)
	for i, p := range v.Products {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("  %d. %s\n", i+1, name)
		for _, s := range p.Stores {
			fmt.Printf("     [%s] %s%s\n", checkMark(storeLinkFilled(s)), s.Name, bivoltWord(s))
		}
	}
	return nil
}

func runProductsEdit(op string, args []string) error {
	fs := flag.NewFlagSet("products "+op, flag.ContinueOnError)
	state := addStateFlag(fs)
	video := fs.String("video", "", "video id, unique id prefix, or #number")
	slot := fs.Int("slot", 0, "product slot, starting at 1")
	name := fs.String("name", "", "product name")
	store := fs.String("store", "", "store name, matched case-insensitively")
	url := fs.String("url", "", "purchase link for bivolt products")
	url110 := fs.String("url-110", "", "purchase link for the 110V variant")
	url220 := fs.String("url-220", "", "purchase link for the 220V variant")
	notBivolt := fs.Bool("not-bivolt", false, "the product needs separate 110V and 220V links")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*video) == "" {
		return errors.New("--video is required")
	}

	lib, path, err := loadLibrary(*state)
	if err != nil {
		return err
	}
	v, err := resolveVideo(lib, *video)
	if err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := applyProductsOp(op, &v, productsOpArgs{
		Slot:      *slot,
		Name:      *name,
		Store:     *store,
		URL:       *url,
		URL110:    *url110,
		URL220:    *url220,
		NotBivolt: *notBivolt,
		Set:       set,
	}); err != nil {
		return err
	}

	stored, promoted, err := lib.SaveEdited(v)
	if err != nil {
		return err
	}
	if err := saveLibrary(lib, path); err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(struct {
			Video    model.Video `json:"video"`
			Promoted bool        `json:"promoted"`
		}{stored, promoted})
	}

	fmt.Printf("saved: %s\n", stored.Title)
	if promoted {
		fmt.Println("promoted to published")
	}
	return nil
}

type productsOpArgs struct {
	Slot      int
	Name      string
	Store     string
	URL       string
	URL110    string
	URL220    string
	NotBivolt bool
	Set       map[string]bool
}

// applyProductsOp mutates the video in place; the caller runs the edit
// pipeline afterwards so derivation and promotion see the new products.
// Products are cloned first: Get hands out shallow copies, and a half-applied
// edit must not leak into the library.
func applyProductsOp(op string, v *model.Video, a productsOpArgs) error {
	v.Products = cloneProducts(v.Products)
	switch op {
	case "add":
		p := model.NewProduct()
		p.Name = strings.TrimSpace(a.Name)
		v.Products = append(v.Products, p)
		v.Title = workflow.RetitleForProductCount(v.Title, len(v.Products))
		return nil
	case "remove":
		i, err := productAt(*v, a.Slot)
		if err != nil {
			return err
		}
		v.Products = append(v.Products[:i], v.Products[i+1:]...)
		v.Title = workflow.RetitleForProductCount(v.Title, len(v.Products))
		return nil
	case "set":
		i, err := productAt(*v, a.Slot)
		if err != nil {
			return err
		}
		if strings.TrimSpace(a.Name) == "" {
			return errors.New("--name is required")
		}
		v.Products[i].Name = strings.TrimSpace(a.Name)
		return nil
	case "add-store":
		i, err := productAt(*v, a.Slot)
		if err != nil {
			return err
		}
		storeName := strings.TrimSpace(a.Store)
		if storeName == "" {
			return errors.New("--store is required")
		}
		if _, err := storeAt(v.Products[i], storeName); err == nil {
			return fmt.Errorf("product slot %d already has store %q", a.Slot, storeName)
		}
		v.Products[i].Stores = append(v.Products[i].Stores, model.StoreLink{
			ID:   "store-" + model.NewID(),
			Name: storeName,
		})
		return nil
	case "remove-store":
		i, err := productAt(*v, a.Slot)
		if err != nil {
			return err
		}
		j, err := storeAt(v.Products[i], a.Store)
		if err != nil {
			return err
		}
		stores := v.Products[i].Stores
		v.Products[i].Stores = append(stores[:j], stores[j+1:]...)
		return nil
	case "set-store":
		i, err := productAt(*v, a.Slot)
		if err != nil {
			return err
		}
		j, err := storeAt(v.Products[i], a.Store)
		if err != nil {
			return err
		}
		s := &v.Products[i].Stores[j]
		if a.Set["url"] {
			s.URL = strings.TrimSpace(a.URL)
		}
		if a.Set["url-110"] {
			s.URL110V = strings.TrimSpace(a.URL110)
		}
		if a.Set["url-220"] {
			s.URL220V = strings.TrimSpace(a.URL220)
		}
		if a.Set["not-bivolt"] {
			s.IsNotBivolt = a.NotBivolt
		}
		return nil
	default:
		return fmt.Errorf("unknown products subcommand %q", op)
	}
}

func cloneProducts(in []model.Product) []model.Product {
	out := append([]model.Product(nil), in...)
	for i := range out {
		out[i].Stores = append([]model.StoreLink(nil), in[i].Stores...)
	}
	return out
}

// productAt maps an operator-facing 1-based slot to a products index.
func productAt(v model.Video, slot int) (int, error) {
	if slot < 1 || slot > len(v.Products) {
		return 0, fmt.Errorf("no product slot %d (video has %d)", slot, len(v.Products))
	}
	return slot - 1, nil
}

func storeAt(p model.Product, name string) (int, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return 0, errors.New("--store is required")
	}
	for i, s := range p.Stores {
		if strings.ToLower(s.Name) == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("product %q has no store %q", p.Name, name)
}

func storeLinkFilled(s model.StoreLink) bool {
	if s.IsNotBivolt {
		return strings.TrimSpace(s.URL110V) != "" && strings.TrimSpace(s.URL220V) != ""
	}
	return strings.TrimSpace(s.URL) != ""
}

func bivoltWord(s model.StoreLink) string {
	if s.IsNotBivolt {
		return " (110V/220V)"
	}
	return ""
}
