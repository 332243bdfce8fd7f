// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/franny-sync/models"

// MergeBookmarks returns local followed by the remote URLs it lacks, with
// duplicates removed by first occurrence. The content is the same for either
// argument order; the order is not.
func MergeBookmarks(local, remote models.BookmarkSet) models.BookmarkSet {
	merged := make(models.BookmarkSet, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local)+len(remote))

	for _, src := range []models.BookmarkSet{local, remote} {
		for _, url := range src {
			if _, ok := seen[url]; ok {
				continue
			}
			seen[url] = struct{}{}
			merged = append(merged, url)
		}
	}

	return merged
}

// MergeHistory combines local ++ remote so that every URL keeps only its
// last occurrence in the concatenation, preserving chronological order, and
// returns at most the newest limit entries. A non-positive limit yields an
// empty log.
//
//	MergeHistory([x y], [y z], 10) == [x y z]
func MergeHistory(local, remote models.HistoryLog, limit int) models.HistoryLog {
	if limit <= 0 {
		return models.HistoryLog{}
	}

	total := len(local) + len(remote)
	at := func(i int) string {
		if i < len(local) {
			return local[i]
		}
		return remote[i-len(local)]
	}

	// newest first; stop as soon as the cap is reached
	newestFirst := make([]string, 0, min(total, limit))
	seen := make(map[string]struct{}, min(total, limit))
	for i := total - 1; i >= 0 && len(newestFirst) < limit; i-- {
		url := at(i)
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		newestFirst = append(newestFirst, url)
	}

	merged := make(models.HistoryLog, len(newestFirst))
	for i, url := range newestFirst {
		merged[len(newestFirst)-1-i] = url
	}
	return merged
}
