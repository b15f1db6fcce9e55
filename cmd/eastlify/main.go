// Package main provides the Eastlify command line client.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/samber/do/v2"

	"github.com/Liban-hassan-noor/eastlify-client/internal/di"
	"github.com/Liban-hassan-noor/eastlify-client/internal/store"
)

const usage = `Eastlify marketplace client.

Usage: eastlify <command> [flags]

Browsing:
  browse        List shops (-category, -street, -search, -favorites)
  shop          Show one shop (eastlify shop <id>)
  listings      List a shop's products (eastlify listings <shop-id>)
  reviews       List a shop's reviews (eastlify reviews <shop-id>)
  review        Leave a review (eastlify review <shop-id> -author -rating [-comment])
  ping          Record a call or WhatsApp tap (eastlify ping <shop-id> [-type] [-item])
  favorite      Toggle a favorite (eastlify favorite <shop-id>)
  favorites     List favorite shop ids

Account:
  login         Sign in (eastlify login <email> <password>)
  logout        Sign out and forget the stored token
  register      Create an account and shop (see eastlify register -h)
  me            Show the signed-in profile
  update-profile  Change profile fields (-name, -phone, -email)

Shop management (signed in):
  update-shop     Change shop fields (see eastlify update-shop -h)
  delete-shop     Delete the shop (eastlify delete-shop <id>)
  my-listings     List own products
  add-listing     Create a product (see eastlify add-listing -h)
  update-listing  Change a product (eastlify update-listing <id> [flags])
  delete-listing  Remove a product (eastlify delete-listing <id>)
  sale            Record a sale (eastlify sale -item <name> -amount <kes>)
  activities      Show recent shop activity

Configuration comes from EASTLIFY_* environment variables
(EASTLIFY_API_URL, EASTLIFY_DATA_DIR, EASTLIFY_LOG_LEVEL).
`

func main() {
	if len(os.Args) < 2 || os.Args[1] == "help" || os.Args[1] == "-h" || os.Args[1] == "--help" {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	injector := di.NewContainer()
	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "eastlify: %v\n", err)
		os.Exit(1)
	}

	s := do.MustInvoke[*store.Store](injector)

	err := run(context.Background(), s, os.Args[1], os.Args[2:])

	if shutdownErr := injector.Shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "eastlify: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, s *store.Store, command string, args []string) error {
	// Every command starts from the persisted session: token and
	// favorites are restored before dispatch.
	if err := s.Restore(ctx); err != nil {
		return err
	}

	switch command {
	case "browse":
		return cmdBrowse(ctx, s, args)
	case "shop":
		return cmdShop(ctx, s, args)
	case "listings":
		return cmdListings(ctx, s, args)
	case "reviews":
		return cmdReviews(ctx, s, args)
	case "review":
		return cmdReview(ctx, s, args)
	case "ping":
		return cmdPing(ctx, s, args)
	case "favorite":
		return cmdFavorite(s, args)
	case "favorites":
		return cmdFavorites(s)
	case "login":
		return cmdLogin(ctx, s, args)
	case "logout":
		s.Logout()
		fmt.Println("signed out")
		return nil
	case "register":
		return cmdRegister(ctx, s, args)
	case "me":
		return cmdMe(s)
	case "update-profile":
		return cmdUpdateProfile(ctx, s, args)
	case "update-shop":
		return cmdUpdateShop(ctx, s, args)
	case "delete-shop":
		return cmdDeleteShop(ctx, s, args)
	case "my-listings":
		return cmdMyListings(ctx, s)
	case "add-listing":
		return cmdAddListing(ctx, s, args)
	case "update-listing":
		return cmdUpdateListing(ctx, s, args)
	case "delete-listing":
		return cmdDeleteListing(ctx, s, args)
	case "sale":
		return cmdSale(ctx, s, args)
	case "activities":
		return cmdActivities(ctx, s)
	default:
		return fmt.Errorf("unknown command %q (run eastlify help)", command)
	}
}

// resultErr converts a failed store result into an error.
func resultErr(res store.Result) error {
	if res.Success {
		return nil
	}
	return errors.New(res.Message)
}

// shift pops the first positional argument.
func shift(args []string, name string) (string, []string, error) {
	if len(args) == 0 || len(args[0]) == 0 || args[0][0] == '-' {
		return "", args, fmt.Errorf("missing %s argument", name)
	}
	return args[0], args[1:], nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}
