package store

const schema = `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS athletes (
    id INTEGER PRIMARY KEY,
    gender TEXT NOT NULL CHECK(gender IN ('Men','Women')),
    name TEXT NOT NULL,
    birth_date TEXT,
    nationality TEXT NOT NULL DEFAULT 'NOR',
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS clubs (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY,
    gender TEXT NOT NULL CHECK(gender IN ('Men','Women')),
    name_no TEXT NOT NULL,
    wa_event TEXT,
    orientation TEXT NOT NULL CHECK(orientation IN ('lower','higher')),
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(gender, name_no)
);

CREATE TABLE IF NOT EXISTS competitions (
    id INTEGER PRIMARY KEY,
    name TEXT,
    city TEXT,
    stadium TEXT,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS results (
    id INTEGER PRIMARY KEY,
    season INTEGER NOT NULL,
    gender TEXT NOT NULL CHECK(gender IN ('Men','Women')),
    event_id INTEGER NOT NULL REFERENCES events(id),
    athlete_id INTEGER NOT NULL REFERENCES athletes(id),
    club_id INTEGER REFERENCES clubs(id),
    rank_in_list INTEGER,
    performance_raw TEXT NOT NULL,
    performance_clean TEXT,
    value REAL,
    wind REAL,
    placement_raw TEXT,
    competition_id INTEGER REFERENCES competitions(id),
    competition_name TEXT,
    venue_city TEXT,
    stadium TEXT,
    result_date TEXT,
    wa_points INTEGER,
    wa_exact INTEGER CHECK(wa_exact IN (0, 1)),
    wa_event TEXT,
    wa_error TEXT,
    source_url TEXT NOT NULL,
    source_type TEXT,
    scraped_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sources (
    id INTEGER PRIMARY KEY,
    source_type TEXT NOT NULL,
    url TEXT NOT NULL,
    season INTEGER NOT NULL,
    gender TEXT NOT NULL,
    row_count INTEGER NOT NULL,
    last_synced_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(url, season, gender)
);

CREATE TABLE IF NOT EXISTS change_log (
    id INTEGER PRIMARY KEY,
    action TEXT NOT NULL,
    detail TEXT,
    rows_affected INTEGER NOT NULL,
    logged_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_results_athlete ON results(athlete_id, season);
CREATE INDEX IF NOT EXISTS idx_results_event ON results(event_id, season, gender);
CREATE INDEX IF NOT EXISTS idx_results_points ON results(season, gender, event_id, wa_points);
`

// SQLite UNIQUE treats NULLs as distinct, so the natural key wraps nullable
// columns in IFNULL. The dedup pass must run before the index is created on
// databases written before the index existed.
const naturalDedup = `
DELETE FROM results
WHERE id NOT IN (
    SELECT MAX(id) FROM results
    GROUP BY
        season,
        gender,
        event_id,
        athlete_id,
        IFNULL(result_date, ''),
        performance_raw,
        IFNULL(competition_id, -1),
        IFNULL(placement_raw, '')
);
`

const naturalUniqueIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS uix_results_natural
ON results(
    season,
    gender,
    event_id,
    athlete_id,
    IFNULL(result_date, ''),
    performance_raw,
    IFNULL(competition_id, -1),
    IFNULL(placement_raw, '')
);
`
