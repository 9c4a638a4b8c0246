package command

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// maxRandomNumber caps the upper bound of random number draws regardless
// of what the user asked for.
const maxRandomNumber = 1000

// dogClient fetches from random.dog; a timeout keeps a slow upstream from
// holding the event handler.
var dogClient = &http.Client{Timeout: 10 * time.Second}

// RegisterRandom registers the commands powered by randomness and chaos.
func RegisterRandom(r *Router) {
	g := NewGroup("random", "Displays a random thing you request.")
	g.Subcommand(&Command{
		Name: "number",
		Help: "Displays a random number within an optional range.",
		Run:  randomNumber,
	})
	g.Subcommand(&Command{
		Name: "dog",
		Help: "Display a randomly chosen dog picture.",
		Run:  randomDog,
	})
	r.Register(g)
}

// drawNumber validates the bounds and draws uniformly from
// [minimum, maximum] inclusive. The maximum is capped before validation,
// so "number 10 5000" still draws from [10, 1000] while "number 10 5"
// is rejected.
func drawNumber(minimum, maximum int) (int, error) {
	if maximum > maxRandomNumber {
		maximum = maxRandomNumber
	}
	if minimum >= maximum {
		return 0, fmt.Errorf("maximum is smaller than minimum")
	}
	return minimum + rand.Intn(maximum-minimum+1), nil
}

func randomNumber(c *Context) error {
	minimum, maximum := 0, 100

	if len(c.Args) > 0 {
		v, err := strconv.Atoi(c.Args[0])
		if err != nil {
			return &UsageError{Message: "minimum must be a whole number."}
		}
		minimum = v
	}
	if len(c.Args) > 1 {
		v, err := strconv.Atoi(c.Args[1])
		if err != nil {
			return &UsageError{Message: "maximum must be a whole number."}
		}
		maximum = v
	}

	n, err := drawNumber(minimum, maximum)
	if err != nil {
		return c.Reply("Maximum is smaller than minimum.")
	}
	return c.Reply(strconv.Itoa(n))
}

func randomDog(c *Context) error {
	resp, err := dogClient.Get("https://random.dog/woof")
	if err != nil {
		return c.Reply("No dog found :(")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.Reply("No dog found :(")
	}

	name, err := io.ReadAll(io.LimitReader(resp.Body, 512))
	if err != nil {
		return c.Reply("No dog found :(")
	}

	url := "https://random.dog/" + strings.TrimSpace(string(name))

	// Videos can't be embedded as images; hand over the link instead.
	if strings.HasSuffix(url, ".mp4") || strings.HasSuffix(url, ".webm") {
		return c.Reply("Here's a dog video: " + url)
	}

	return c.Send(&discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title: "Random Dog",
			Image: &discordgo.MessageEmbedImage{URL: url},
		}},
		Reference: c.Message.Reference(),
	})
}
