// cmd/extract/extract_audio.go
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"Audio-Viewer/internal/app/config"
	"Audio-Viewer/internal/app/dataset"
	"Audio-Viewer/internal/app/repository"

	"github.com/minio/minio-go/v7"
)

func main() {
	filePath := flag.String("file", "", "path to the parquet file")
	outDir := flag.String("out", "extracted", "output directory for wav clips")
	upload := flag.Bool("upload", false, "also upload clips to the MinIO bucket")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("usage: extract -file dataset.parquet [-out dir] [-upload]")
	}

	fmt.Println("=== Audio Extraction ===")
	fmt.Printf("Source: %s\n", *filePath)

	startTime := time.Now()

	// 1. Загружаем датасет
	fmt.Println("1. Loading parquet file...")
	d, err := dataset.Load(*filePath)
	if err != nil {
		log.Fatal("   Failed to load dataset: ", err)
	}
	fmt.Printf("   ✓ Loaded %d rows\n", d.Len())

	// 2. Пишем wav файлы
	fmt.Println("2. Writing wav clips...")
	subdir := filepath.Join(*outDir, filepath.Base(*filePath))
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		log.Fatal("   Failed to create output directory: ", err)
	}

	for i := 0; i < d.Len(); i++ {
		rec, _ := d.Record(i)
		clipPath := filepath.Join(subdir, fmt.Sprintf("%d.wav", i))
		if err := os.WriteFile(clipPath, rec.Audio, 0o644); err != nil {
			log.Fatalf("   Failed to write %s: %v", clipPath, err)
		}
	}
	fmt.Printf("   ✓ %d clips written to %s\n", d.Len(), subdir)

	// 3. Выгружаем в MinIO если запрошено
	if *upload {
		fmt.Println("3. Uploading clips to MinIO...")

		cfg, err := config.NewConfig()
		if err != nil {
			log.Fatal("   Failed to load config: ", err)
		}

		minioClient, err := repository.InitMinIOClient(cfg)
		if err != nil {
			log.Fatal("   Failed to connect to MinIO: ", err)
		}

		ctx := context.Background()
		name := filepath.Base(*filePath)
		for i := 0; i < d.Len(); i++ {
			rec, _ := d.Record(i)
			objectName := fmt.Sprintf("%s/%d.wav", name, i)
			_, err := minioClient.PutObject(ctx, cfg.MinioBucket, objectName,
				bytes.NewReader(rec.Audio), int64(len(rec.Audio)), minio.PutObjectOptions{
					ContentType: "audio/wav",
				})
			if err != nil {
				log.Fatalf("   Failed to upload %s: %v", objectName, err)
			}
		}
		fmt.Printf("   ✓ %d clips uploaded to bucket %s\n", d.Len(), cfg.MinioBucket)
	}

	fmt.Println("\n=== Extraction Completed ===")
	fmt.Printf("Total time: %v\n", time.Since(startTime))
}
