// Package catalog holds the registry of design patterns grouped by category.
//
// # Overview
//
// A Catalog maps each of the three fixed categories (Creational, Structural,
// Behavioural) to the patterns registered under it, in registration order.
// Catalogs are populated through a Builder and are read-only once built:
//
//	b := catalog.NewBuilder()
//	_ = b.Register(catalog.Creational, "Singleton", catalog.StatusComplete, "singleton.py")
//	_ = b.Register(catalog.Creational, "Builder", catalog.StatusPlanned, "")
//
//	cat, err := b.Build()
//	if err != nil {
//	    return err // the catalog must not be used
//	}
//
//	fmt.Print(cat.Render())
//
// # Errors
//
// Registration fails with *DuplicateNameError when a name is already present
// in its category and with *UnknownCategoryError when the category is not
// one of the fixed three. Once any registration has failed, Build returns
// that error and no catalog.
//
// # Rendering
//
// Render produces a Markdown bullet list. Categories appear in fixed order,
// each as a bold top-level bullet; entries are nested bullets. Only complete
// entries with a reference are rendered as links.
package catalog
