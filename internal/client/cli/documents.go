package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
)

// Documents lists the uploaded files.
func (a *App) Documents(ctx context.Context) error {
	docs, err := a.docs.List(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if len(docs) == 0 {
		printlnFn("No documents yet. Use 'upload' to add one.")
		return nil
	}
	for _, d := range docs {
		master := ""
		if d.IsMaster {
			master = " [master]"
		}
		printlnFn(fmt.Sprintf("%4d  %-12s %s%s", d.ID, d.DocumentType, d.FileName, master))
	}
	return nil
}

// Upload sends a local file to the server, optionally attaching it to an
// application and marking it as the master resume.
func (a *App) Upload(ctx context.Context) error {
	filePath, err := getSimpleText(a.reader, "Enter file path (.pdf/.docx/.txt)", os.Stdout)
	if err != nil {
		return err
	}
	docTypeRaw, err := getSimpleText(a.reader, "Enter document type (resume/cover_letter/other)", os.Stdout)
	if err != nil {
		return err
	}
	masterRaw, err := getSimpleText(a.reader, "Master resume? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	appIDRaw, err := getSimpleText(a.reader, "Attach to application id (Enter to skip)", os.Stdout)
	if err != nil {
		return err
	}

	var applicationID int64
	if appIDRaw != "" {
		applicationID, err = strconv.ParseInt(appIDRaw, 10, 64)
		if err != nil {
			printlnFn("Not a valid id:", appIDRaw)
			return err
		}
	}
	isMaster := strings.EqualFold(masterRaw, "y") || strings.EqualFold(masterRaw, "yes")

	doc, err := a.docs.Upload(ctx, filePath, models.DocumentType(docTypeRaw), isMaster, applicationID)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Uploaded %s as document %d", doc.FileName, doc.ID))
	return nil
}

// DeleteDocument removes an uploaded file by id.
func (a *App) DeleteDocument(ctx context.Context) error {
	id, err := a.promptID("Enter document id to delete")
	if err != nil {
		return err
	}
	if err := a.docs.Delete(ctx, id); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Deleted")
	return nil
}
