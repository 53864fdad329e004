package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"arith-service/internal/client"
	"arith-service/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	baseURL := flag.String("url", config.ClientURL(), "calculator base URL")
	op := flag.String("op", "add", "operation: add, subtract, multy or diff")
	a := flag.String("a", "", "first operand")
	b := flag.String("b", "", "second operand")
	wait := flag.Duration("wait", 0, "wait up to this long for the service to come up")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	x, err := strconv.ParseFloat(*a, 64)
	if err != nil {
		log.Fatalf("Invalid -a %q: %v", *a, err)
	}
	y, err := strconv.ParseFloat(*b, 64)
	if err != nil {
		log.Fatalf("Invalid -b %q: %v", *b, err)
	}

	c := client.New(*baseURL, nil)
	ctx := context.Background()

	if *wait > 0 {
		if err := c.WaitReady(ctx, *wait); err != nil {
			log.Fatalf("Service not ready: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	result, err := c.Do(ctx, *op, x, y)
	if err != nil {
		log.Fatalf("%s failed: %v", *op, err)
	}
	fmt.Println(strconv.FormatFloat(result, 'g', -1, 64))
}
