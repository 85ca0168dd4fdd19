package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"food-ordering/checkout"
	"food-ordering/config"
	"food-ordering/storefront"
)

// itemFlags collects repeated -item id:option[:qty] values.
type itemFlags []string

func (f *itemFlags) String() string { return strings.Join(*f, ",") }

func (f *itemFlags) Set(v string) error {
	*f = append(*f, v)
	return nil
}

type itemSelection struct {
	id, option string
	qty        int
}

func parseItemSelection(v string) (itemSelection, error) {
	parts := strings.Split(v, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return itemSelection{}, fmt.Errorf("item %q: want id:option[:qty]", v)
	}
	sel := itemSelection{id: parts[0], option: parts[1], qty: 1}
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil || n < 1 {
			return itemSelection{}, fmt.Errorf("item %q: bad quantity", v)
		}
		sel.qty = n
	}
	return sel, nil
}

// runOrder browses the menu or places an order against API_HOST.
// Without -item it only prints the menu.
func runOrder(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	fs.SetOutput(out)
	var items itemFlags
	table := fs.String("table", "", "table id")
	category := fs.String("category", "", "category id to list (default: first category)")
	search := fs.String("search", "", "filter menu by name")
	name := fs.String("name", "", "customer name")
	phone := fs.String("phone", "", "10-digit phone number")
	address := fs.String("address", "", "delivery address")
	fs.Var(&items, "item", "id:option[:qty], repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := storefront.NewClient(cfg.Storefront.APIHost, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		return err
	}
	ctx := context.Background()
	menu, err := client.LoadMenu(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		printMenu(out, menu, *category, *search)
		return nil
	}

	session := checkout.NewSession(*table)
	for _, raw := range items {
		sel, err := parseItemSelection(raw)
		if err != nil {
			return err
		}
		it, ok := menu.Item(sel.id)
		if !ok {
			return fmt.Errorf("item %q is not on the menu", sel.id)
		}
		price, ok := it.Options[sel.option]
		if !ok {
			return fmt.Errorf("item %q has no option %q (have %s)", sel.id, sel.option, strings.Join(it.OptionNames(), ", "))
		}
		for i := 0; i < sel.qty; i++ {
			session.AddToCart(it.FoodItem, sel.option, price)
		}
	}
	for field, v := range map[string]string{checkout.FieldName: *name, checkout.FieldPhone: *phone, checkout.FieldAddress: *address} {
		if err := session.SetCustomerField(field, v); err != nil {
			return err
		}
	}

	receipt, err := session.PlaceOrder(ctx, client)
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			for _, f := range []string{checkout.FieldName, checkout.FieldPhone, checkout.FieldAddress} {
				if msg, ok := verr.Fields[f]; ok {
					fmt.Fprintf(out, "  %s: %s\n", f, msg)
				}
			}
		}
		return err
	}

	fmt.Fprintf(out, "✅ Order %s placed: %d item(s), total ₹%.2f (message %s)\n",
		receipt.Order.OrderID, len(receipt.Order.Items), receipt.Order.Total, receipt.MessageSid)
	return nil
}

func printMenu(out io.Writer, menu *storefront.Menu, categoryID, search string) {
	if categoryID == "" {
		if def, ok := menu.DefaultCategory(); ok {
			categoryID = def.ID
		}
	}
	for _, c := range menu.Categories {
		marker := " "
		if c.ID == categoryID {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s (%s)\n", marker, c.Name, c.ID)
	}
	fmt.Fprintln(out)

	list := menu.Filter(categoryID, search)
	if len(list) == 0 {
		fmt.Fprintln(out, "No items match.")
		return
	}
	for _, it := range list {
		opts := make([]string, 0, len(it.Options))
		for _, o := range it.OptionNames() {
			opts = append(opts, fmt.Sprintf("%s ₹%s", o, strconv.FormatFloat(it.Options[o], 'f', -1, 64)))
		}
		fmt.Fprintf(out, "%-12s %-24s %s\n", it.ID, it.Name, strings.Join(opts, " | "))
	}
}
