// Package modmeta extracts metadata from Minecraft mod artifacts.
//
// Given a mod jar, a loose mod folder, or a LiteLoader .litemod file,
// modmeta finds the metadata file for whichever loader produced it,
// decodes it despite several historically evolved schemas, and returns a
// normalized ModDescriptor.
//
// # Quick Start
//
// Reading metadata from a mod jar:
//
//	desc := modmeta.Parse(modmeta.KindArchive, "mods/jei.jar")
//	if desc == nil {
//		fmt.Println("no metadata")
//		return
//	}
//	fmt.Printf("%s %s by %v\n", desc.DisplayName(), desc.Version, desc.Authors)
//
// # Supported Formats
//
//   - mcmod.info: Forge legacy array and versioned (list version 2) JSON
//   - fabric.mod.json: Fabric, schema versions 0 and 1
//   - forgeversion.properties: the Forge loader's own version stamp
//   - litemod.json: LiteLoader mods (.litemod archives only)
//
// Archives are probed in that order and the first entry present wins.
// Loose folders only recognize mcmod.info.
//
// # Artifact Kinds
//
// The caller says how an artifact is packaged (KindArchive, KindDirectory,
// KindLitemod). modmeta does not guess; DetectKind is available for callers
// that only have a path.
//
// # Asynchronous Parsing
//
// A Task carries a caller-chosen correlation Token. Start runs it on its own
// goroutine and returns a channel that delivers exactly one Result:
//
//	res := <-modmeta.NewTask(42, modmeta.KindArchive, path).Start()
//	if res.Found() {
//		fmt.Println(res.Token, res.Descriptor.ModID)
//	}
//
// Parse a whole mods folder concurrently:
//
//	requests, err := modmeta.ScanDir("instance/mods")
//	if err != nil {
//		log.Fatal(err)
//	}
//	results, err := modmeta.ParseMany(ctx, requests)
//
// # Error Handling
//
// Parsing never fails. An archive that cannot be opened, an artifact without
// metadata, and malformed metadata all produce a Result without a
// descriptor. Malformed content is reported through Result.Warnings and
// logged through the logger given with WithLogger:
//
//	for _, w := range res.Warnings {
//		log.Printf("Warning: %s", w)
//	}
//
// Missing optional fields never cause a failure; they read as empty.
package modmeta
