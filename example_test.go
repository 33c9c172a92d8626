package passageflex_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/sufield/passageflex"
)

// ExampleNew demonstrates constructing a client and starting a
// passkey registration.
func ExampleNew() {
	flex, err := passageflex.New(os.Getenv("PASSAGE_APP_ID"), os.Getenv("PASSAGE_API_KEY"))
	if err != nil {
		log.Fatal(err)
	}

	// Start a registration for a user your application identifies as
	// "user-123". Hand the transaction ID to the client-side SDK to
	// run the WebAuthn ceremony in the browser.
	transactionID, err := flex.Auth.CreateRegisterTransaction(context.Background(), "user-123", "My Laptop")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(transactionID)
}

// ExampleAuth_VerifyNonce demonstrates completing a login: the
// client-side SDK returns a nonce after the ceremony, and verifying
// it yields the authenticated user's external ID.
func ExampleAuth_VerifyNonce() {
	flex, err := passageflex.NewFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	externalID, err := flex.Auth.VerifyNonce(context.Background(), "nonce-from-client")
	if errors.Is(err, passageflex.ErrInvalidNonce) {
		// The nonce expired or was already used; restart the flow.
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	// externalID is now an authenticated identity; issue your own
	// session token for it.
	fmt.Println(externalID)
}

// ExampleUser_RevokeDevice demonstrates removing one of a user's
// registered passkeys.
func ExampleUser_RevokeDevice() {
	flex, err := passageflex.NewFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	devices, err := flex.User.ListDevices(context.Background(), "user-123")
	if err != nil {
		log.Fatal(err)
	}

	for _, device := range devices {
		if device.FriendlyName == "Old Phone" {
			if err := flex.User.RevokeDevice(context.Background(), "user-123", device.ID); err != nil {
				log.Fatal(err)
			}
		}
	}
}
