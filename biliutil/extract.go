package biliutil

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	ErrNotVideoURL = errors.New("not a video url")
	ErrNoBV        = errors.New("no bv found in url")

	bvPattern = regexp.MustCompile(`\b(?i:bv1)[` + magicStr + `]{9}\b`)
	avPattern = regexp.MustCompile(`(?i)\bav(\d{1,16})\b`)
)

// FindBV returns every valid BV token in text, without duplicates.
func FindBV(text string) []string {
	var result []string
	seen := make(map[uint64]struct{})
	for _, bv := range bvPattern.FindAllString(text, -1) {
		aid, err := Decode(bv)
		if err != nil {
			continue
		}
		if _, ok := seen[aid]; ok {
			continue
		}
		seen[aid] = struct{}{}
		result = append(result, bv)
	}
	return result
}

// FindAV returns every in-range "av<number>" in text, without duplicates.
func FindAV(text string) []uint64 {
	var result []uint64
	seen := make(map[uint64]struct{})
	for _, m := range avPattern.FindAllStringSubmatch(text, -1) {
		aid, err := ParseAid(m[1])
		if err != nil || aid < MinAid || aid >= MaxAid {
			continue
		}
		if _, ok := seen[aid]; ok {
			continue
		}
		seen[aid] = struct{}{}
		result = append(result, aid)
	}
	return result
}

// BVFromURL returns the first path element of a video page url that is a
// valid BV token.
func BVFromURL(rawurl string, host string) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(u.Host, host) {
		return "", ErrNotVideoURL
	}
	for _, e := range strings.Split(u.Path, "/") {
		if _, err := Decode(e); err == nil {
			return e, nil
		}
	}
	return "", ErrNoBV
}
