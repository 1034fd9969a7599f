// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package model defines the core data structures for the application.
// This file, `featured.go`, contains the editorially curated structures that
// back the home page: the featured lecture with its related-lecture rail, and
// the downloadable study-material collections. These are fixed singletons
// seeded at startup, not search results.
package model

// FeaturedLecture is the hero item shown on the home page.
type FeaturedLecture struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration"`
	Date      string `json:"date"`
}

// RelatedLecture is one entry in the rail beneath the featured lecture.
type RelatedLecture struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration"`
	Channel   string `json:"channel"`
	Views     string `json:"views"`
}

// FeaturedContent bundles the hero lecture and its related rail.
type FeaturedContent struct {
	Featured        *FeaturedLecture  `json:"featured"`
	RelatedLectures []*RelatedLecture `json:"relatedLectures"`
}

// StudyFile is a single downloadable file inside a study-material collection.
type StudyFile struct {
	Name   string `json:"name"`
	Format string `json:"format"` // E.g. "PDF", "MP3", "Document".
}

// StudyMaterial is a themed collection of study files (Sanskrit texts, audio
// lectures, study guides) with the button styling the front end renders.
type StudyMaterial struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Icon        string       `json:"icon"`
	Description string       `json:"description"`
	Files       []*StudyFile `json:"files"`
	ButtonText  string       `json:"buttonText"`
	ButtonColor string       `json:"buttonColor"`
}
