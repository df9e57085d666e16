package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/coinbase/cb-rc5-go/pkg/rc5"
)

func main() {
	log.Printf("cb-rc5-go version: %s", rc5.LibraryVersion())

	if err := rc5.SelfTest(); err != nil {
		if errors.Is(err, rc5.ErrSelfTest) {
			log.Fatalf("known-answer self-test failed: %v", err)
		}
		log.Fatalf("unexpected failure running self-test: %v", err)
	}

	fmt.Println("RC5-32 known-answer self-test passed")
}
