package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"abv/biliutil"
)

var ErrNothingToReply = errors.New("no url or video id in message")

// Replier builds the reply text for an incoming message.
type Replier struct {
	resolver *Resolver
	host     string
}

// NewReplier returns a Replier converting video urls on host.
func NewReplier(resolver *Resolver, host string) *Replier {
	return &Replier{resolver: resolver, host: host}
}

// Reply expands every url of msg and converts every video id it finds,
// either in the expanded urls or typed directly in the text.
func (r *Replier) Reply(ctx context.Context, msg string) (string, error) {
	var blocks []string

	shortURLs, err := FindURLs(msg)
	if err == nil {
		blocks = append(blocks, r.replyURLs(ctx, shortURLs)...)
	}

	if ids := replyIDs(StripURLs(msg)); ids != "" {
		blocks = append(blocks, ids)
	}

	if len(blocks) == 0 {
		return "", ErrNothingToReply
	}
	return strings.Join(blocks, "\n\n"), nil
}

func (r *Replier) replyURLs(ctx context.Context, shortURLs []string) []string {
	longURLs := make([][]string, len(shortURLs))

	group := sync.WaitGroup{}
	for i, u := range shortURLs {
		group.Add(1)
		go func(i int, s string) {
			defer group.Done()

			hops, err := r.resolver.Resolve(ctx, s)
			if err != nil {
				log.Debugf("failed resolving %s: %s", s, err)
			}
			longURLs[i] = hops
		}(i, u)
	}
	group.Wait()

	blocks := make([]string, 0, len(shortURLs))
	for i, s := range shortURLs {
		var result string
		lastURL := s
		if longURL := longURLs[i]; len(longURL) > 0 {
			result += fmt.Sprintf("✅ %s\n", strings.Join(longURL, "\n➡️ "))
			lastURL = longURL[len(longURL)-1]
		} else {
			result += fmt.Sprintf("❌ %s\n", s)
		}
		if bv, err := biliutil.BVFromURL(lastURL, r.host); err == nil {
			aid, _ := biliutil.Decode(bv)
			result += fmt.Sprintf("🆎 %s ➡️ av%d\n", bv, aid)
		}
		blocks = append(blocks, strings.TrimSuffix(result, "\n"))
	}
	return blocks
}

func replyIDs(msg string) string {
	var lines []string
	for _, bv := range biliutil.FindBV(msg) {
		if aid, err := biliutil.Decode(bv); err == nil {
			lines = append(lines, fmt.Sprintf("🆎 %s ➡️ av%d", bv, aid))
		}
	}
	for _, aid := range biliutil.FindAV(msg) {
		if bv, err := biliutil.Encode(aid); err == nil {
			lines = append(lines, fmt.Sprintf("🆎 av%d ➡️ %s", aid, bv))
		}
	}
	return strings.Join(lines, "\n")
}
