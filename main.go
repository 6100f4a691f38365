package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nexxdevv/sunset-traders-api/auth"
	"github.com/nexxdevv/sunset-traders-api/catalog"
	"github.com/nexxdevv/sunset-traders-api/checkout"
	orderControllers "github.com/nexxdevv/sunset-traders-api/controllers/order"
	"github.com/nexxdevv/sunset-traders-api/docstore"
	"github.com/nexxdevv/sunset-traders-api/localstore"
	"github.com/nexxdevv/sunset-traders-api/routes"
	"github.com/nexxdevv/sunset-traders-api/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	ctx := context.Background()

	// Static catalog, loaded once
	cat := catalog.Load()
	log.Printf("✅ Catalog loaded with %d products", len(cat.All()))

	// Local persisted state (cart + saved products)
	localPath := os.Getenv("LOCAL_STORE_PATH")
	if localPath == "" {
		localPath = "sunset-traders.db"
	}
	ls, err := localstore.Open(localPath)
	if err != nil {
		log.Fatalf("❌ Failed to open local store: %v", err)
	}

	cartStore := store.NewCartStore(ls)
	userStore := store.NewUserStore(ls)

	// Firebase auth + Firestore document store
	fsClient, err := auth.InitFirebase(ctx)
	if err != nil {
		log.Fatalf("❌ Firebase init failed: %v", err)
	}
	defer fsClient.Close()
	docs := docstore.NewFirestoreStore(fsClient)

	binder := auth.NewBinder(userStore, docs)

	// Stripe checkout
	payment, err := checkout.NewStripeClient()
	if err != nil {
		log.Fatalf("❌ Stripe init failed: %v", err)
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	orchestrator := checkout.New(payment, cartStore, userStore, docs, checkout.Config{
		BaseURL:   baseURL,
		Broadcast: orderControllers.BroadcastNewOrder,
	})

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog:      cat,
		Cart:         cartStore,
		Users:        userStore,
		Docs:         docs,
		Binder:       binder,
		Orchestrator: orchestrator,
	})

	// Back up the local store at 2 AM daily, keep 4 days of backups
	backupDir := os.Getenv("LOCAL_STORE_BACKUP_DIR")
	if backupDir != "" {
		go startDailyBackupAtFixedTime(localPath, backupDir, 4*24*time.Hour, 2, 0)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// startDailyBackupAtFixedTime backs up the local store daily at a fixed hour
// and removes old backups
func startDailyBackupAtFixedTime(srcPath, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next local store backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destPath := filepath.Join(backupDir, timestamp+"_"+filepath.Base(srcPath))

		if err := os.MkdirAll(backupDir, 0755); err != nil {
			log.Printf("❌ Failed to create backup directory: %v", err)
			continue
		}
		if err := copyFile(srcPath, destPath); err != nil {
			log.Printf("❌ Failed to back up local store: %v", err)
		} else {
			log.Printf("✅ Local store backed up to %s", destPath)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backups older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", path, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", path)
			}
		}
	}
}
