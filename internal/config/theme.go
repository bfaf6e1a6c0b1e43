package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownSlot is returned for a [theme] table naming no slot.
var ErrUnknownSlot = errors.New("unknown theme slot")

// Theme slots that can be styled from the configuration file.
const (
	SlotItemHighlightActive   = "item_highlight_active"
	SlotItemHighlightInactive = "item_highlight_inactive"
	SlotBlockActive           = "block_active"
	SlotStatusArtist          = "status_artist"
	SlotStatusAlbum           = "status_album"
	SlotStatusTitle           = "status_title"
	SlotArtistSort            = "artist_sort"
	SlotAlbum                 = "album"
	SlotPlaying               = "playing"
	SlotPaused                = "paused"
	SlotStopped               = "stopped"
	SlotSlashSpan             = "slash_span"
	SlotSearchQueryActive     = "search_query_active"
	SlotSearchQueryInactive   = "search_query_inactive"
	SlotMatch                 = "match"
)

var themeSlots = []string{
	SlotItemHighlightActive,
	SlotItemHighlightInactive,
	SlotBlockActive,
	SlotStatusArtist,
	SlotStatusAlbum,
	SlotStatusTitle,
	SlotArtistSort,
	SlotAlbum,
	SlotPlaying,
	SlotPaused,
	SlotStopped,
	SlotSlashSpan,
	SlotSearchQueryActive,
	SlotSearchQueryInactive,
	SlotMatch,
}

// IsThemeSlot reports whether name is a known theme slot.
func IsThemeSlot(name string) bool {
	return slices.Contains(themeSlots, name)
}

// validateColor accepts "", "#rgb", "#rrggbb" or an ANSI color number 0-255.
func validateColor(c string) error {
	if c == "" {
		return nil
	}
	if c[0] == '#' {
		if len(c) != 4 && len(c) != 7 {
			return fmt.Errorf("color %q: want #rgb or #rrggbb", c)
		}
		if _, err := colorful.Hex(c); err != nil {
			return fmt.Errorf("color %q: %w", c, err)
		}
		return nil
	}
	n, err := strconv.Atoi(c)
	if err != nil || n < 0 || n > 255 {
		return fmt.Errorf("color %q: want #rrggbb or 0-255", c)
	}
	return nil
}
