package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/storelink/storelink-backend/config"
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/internal/app/repository"
	"github.com/storelink/storelink-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

const usage = `Usage:
  go run cmd/seed/main.go stores <xlsx_file_path> <owner_id>
  go run cmd/seed/main.go products <xlsx_file_path> <store_id> <category_id>

Store sheet layout (first row is the header):
  name | description | website | logo_key
Product sheet layout (first row is the header):
  name | description | price | stock | digital | image_key`

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	switch os.Args[1] {
	case "stores":
		if len(os.Args) < 4 {
			log.Fatal(usage)
		}
		seedStores(os.Args[2], os.Args[3])
	case "products":
		if len(os.Args) < 5 {
			log.Fatal(usage)
		}
		seedProducts(os.Args[2], os.Args[3], os.Args[4])
	default:
		log.Fatal(usage)
	}
}

func seedStores(filePath, ownerArg string) {
	ownerID, err := parseID(ownerArg)
	if err != nil {
		log.Fatal("Invalid owner_id:", err)
	}

	userRepo := repository.NewUserRepository(db.GetDB())
	storeRepo := repository.NewStoreRepository(db.GetDB())

	// Fail early if the owning user does not exist
	if _, err := userRepo.FindByID(ownerID); err != nil {
		log.Fatal("Owner not found:", err)
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	stores, err := readStoresFromXLSX(filePath, ownerID)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total stores to import: %d\n", len(stores))
	if !confirmImport() {
		return
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := storeRepo.BulkCreate(stores, batchSize); err != nil {
		log.Fatal("Failed to bulk create stores:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total stores imported: %d\n", len(stores))
}

func seedProducts(filePath, storeArg, categoryArg string) {
	storeID, err := parseID(storeArg)
	if err != nil {
		log.Fatal("Invalid store_id:", err)
	}
	categoryID, err := parseID(categoryArg)
	if err != nil {
		log.Fatal("Invalid category_id:", err)
	}

	storeRepo := repository.NewStoreRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())

	// Fail early if the target store or category does not exist
	if _, err := storeRepo.FindByID(storeID); err != nil {
		log.Fatal("Store not found:", err)
	}
	if _, err := categoryRepo.FindByID(categoryID); err != nil {
		log.Fatal("Category not found:", err)
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, err := readProductsFromXLSX(filePath, storeID, categoryID)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(products))
	if !confirmImport() {
		return
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := productRepo.BulkCreate(products, batchSize); err != nil {
		log.Fatal("Failed to bulk create products:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", len(products))
}

func confirmImport() bool {
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return false
	}
	return true
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func openFirstSheet(filePath string) (*excelize.File, [][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		f.Close()
		return nil, nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		f.Close()
		return nil, nil, fmt.Errorf("no data found in XLSX file")
	}
	return f, rows, nil
}

func readStoresFromXLSX(filePath string, ownerID uint) ([]model.Store, error) {
	f, rows, err := openFirstSheet(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var stores []model.Store
	seenNames := make(map[string]bool)
	skippedCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 1 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			skippedCount++
			continue
		}

		description := ""
		if len(row) > 1 {
			description = strings.TrimSpace(row[1])
		}
		website := ""
		if len(row) > 2 {
			website = strings.TrimSpace(row[2])
		}
		logo := ""
		if len(row) > 3 {
			logo = strings.TrimSpace(row[3])
		}

		// Duplicate check within the file by store name
		key := strings.ToLower(name)
		if seenNames[key] {
			skippedCount++
			continue
		}
		seenNames[key] = true

		stores = append(stores, model.Store{
			OwnerID:     ownerID,
			Name:        name,
			Description: description,
			Website:     website,
			Logo:        logo,
		})

		if len(stores)%500 == 0 {
			fmt.Printf("Processed %d stores...\n", len(stores))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid stores: %d\n", len(stores))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return stores, nil
}

func readProductsFromXLSX(filePath string, storeID, categoryID uint) ([]model.Product, error) {
	f, rows, err := openFirstSheet(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var products []model.Product
	seenNames := make(map[string]bool)
	skippedCount := 0
	invalidPriceCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 3 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		description := strings.TrimSpace(row[1])
		priceStr := strings.TrimSpace(row[2])

		if name == "" || priceStr == "" {
			skippedCount++
			continue
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			invalidPriceCount++
			skippedCount++
			continue
		}

		var stock uint
		if len(row) > 3 {
			if parsed, err := strconv.ParseUint(strings.TrimSpace(row[3]), 10, 32); err == nil {
				stock = uint(parsed)
			}
		}

		var digital *bool
		if len(row) > 4 {
			switch strings.ToLower(strings.TrimSpace(row[4])) {
			case "true", "yes", "1":
				v := true
				digital = &v
			case "false", "no", "0":
				v := false
				digital = &v
			}
		}

		image := ""
		if len(row) > 5 {
			image = strings.TrimSpace(row[5])
		}

		// Duplicate check within the file by product name
		key := strings.ToLower(name)
		if seenNames[key] {
			skippedCount++
			continue
		}
		seenNames[key] = true

		products = append(products, model.Product{
			StoreID:     storeID,
			CategoryID:  categoryID,
			Name:        name,
			Description: description,
			Price:       price,
			Stock:       stock,
			Image:       image,
			Available:   true,
			Digital:     digital,
		})

		if len(products)%500 == 0 {
			fmt.Printf("Processed %d products...\n", len(products))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid products: %d\n", len(products))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)
	fmt.Printf("  Rows with invalid prices: %d\n", invalidPriceCount)

	return products, nil
}
