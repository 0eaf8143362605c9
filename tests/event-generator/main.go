// Publishes random order events to the events topic so the urgent-alert
// consumer can be exercised locally.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

var (
	priorities = []string{"normal", "high", "urgent"}
	statuses   = []string{"pending", "confirmed", "in_transit"}
	regions    = []string{"Jardim Paulista", "Bela Vista", "Moema", "Pinheiros", "Vila Mariana"}
)

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func randomOrderEvent() map[string]any {
	now := time.Now()
	return map[string]any{
		"id":       "order-" + randomString(8),
		"driverId": "driver-123",
		"customer": map[string]any{
			"id":    "customer-" + randomString(6),
			"name":  "Cliente " + randomString(4),
			"phone": fmt.Sprintf("5511%09d", rand.Intn(1_000_000_000)),
		},
		"address": map[string]any{
			"street":       "Rua " + randomString(6),
			"number":       fmt.Sprint(rand.Intn(2000)),
			"neighborhood": regions[rand.Intn(len(regions))],
			"city":         "São Paulo",
			"state":        "SP",
			"zipcode":      fmt.Sprintf("%08d", rand.Intn(100_000_000)),
		},
		"items": []map[string]any{
			{"id": "item-" + randomString(6), "name": "Item " + randomString(4), "quantity": 1 + rand.Intn(3), "price": 10 + rand.Float64()*200},
		},
		"status":     statuses[rand.Intn(len(statuses))],
		"priority":   priorities[rand.Intn(len(priorities))],
		"totalValue": 10 + rand.Float64()*500,
		"deliveryWindow": map[string]any{
			"start": now.Add(time.Duration(rand.Intn(6)) * time.Hour),
			"end":   now.Add(time.Duration(6+rand.Intn(6)) * time.Hour),
		},
		"createdAt": now,
		"updatedAt": now,
	}
}

func main() {
	writer := &kafka.Writer{
		Addr:     kafka.TCP("localhost:9092"),
		Topic:    "order-events",
		Balancer: &kafka.LeastBytes{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			event := randomOrderEvent()
			data, err := json.Marshal(event)
			if err != nil {
				log.Println("failed to marshal event:", err)
				continue
			}
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to write event:", err)
				continue
			}
			fmt.Printf("published %s priority=%s\n", event["id"], event["priority"])
		}
	}
}
