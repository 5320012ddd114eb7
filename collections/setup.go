package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the quotations collection exists.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quotation_number", Required: true})
		// Not required at the schema level: legacy imports may lack a date
		// until MigrateQuotationDates backfills it.
		c.Fields.Add(&core.TextField{Name: "quotation_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "gender",
			Required:  true,
			Values:    []string{"male", "female"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "origin", Required: false})
		c.Fields.Add(&core.TextField{Name: "destination", Required: false})
		c.Fields.Add(&core.NumberField{Name: "household_charge", Required: false})
		c.Fields.Add(&core.TextField{Name: "household_volume", Required: false})
		c.Fields.Add(&core.NumberField{Name: "car_charge", Required: false})
		c.Fields.Add(&core.JSONField{Name: "services", Required: false})
		c.Fields.Add(&core.JSONField{Name: "taxes", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_amount", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_quotations_number", true, "quotation_number", "")
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
